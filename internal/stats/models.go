package stats

import (
	"encoding/json"
	"fmt"
)

// LanguageStat holds line counts for a single language or for the whole repository.
type LanguageStat struct {
	Files    int `json:"files"    yaml:"files"`
	Lines    int `json:"lines"    yaml:"lines"`
	Codes    int `json:"codes"    yaml:"codes"`
	Comments int `json:"comments" yaml:"comments"`
	Blanks   int `json:"blanks"   yaml:"blanks"`
}

func (s LanguageStat) add(other LanguageStat) LanguageStat {
	return LanguageStat{
		Files:    s.Files + other.Files,
		Lines:    s.Lines + other.Lines,
		Codes:    s.Codes + other.Codes,
		Comments: s.Comments + other.Comments,
		Blanks:   s.Blanks + other.Blanks,
	}
}

// Entry pairs a language name with its stats. It encodes as a two element array.
type Entry struct {
	Language string
	Stat     LanguageStat
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{e.Language, e.Stat})
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 { //nolint:mnd //name and stat
		return fmt.Errorf("stats entry: expected 2 elements, got %d", len(pair))
	}

	if err := json.Unmarshal(pair[0], &e.Language); err != nil {
		return fmt.Errorf("stats entry language: %w", err)
	}
	if err := json.Unmarshal(pair[1], &e.Stat); err != nil {
		return fmt.Errorf("stats entry stat: %w", err)
	}

	return nil
}

func (e Entry) MarshalYAML() (any, error) {
	return []any{e.Language, e.Stat}, nil
}

// Response is the result of one analysis run.
type Response struct {
	Origin string       `json:"origin" yaml:"origin"`
	Stats  []Entry      `json:"stats"  yaml:"stats"`
	Total  LanguageStat `json:"total"  yaml:"total"`
}
