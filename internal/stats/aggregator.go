package stats

import (
	"cmp"
	"slices"

	"github.com/apiarycd/repostats/internal/scanner"
	"github.com/samber/lo"
)

func newLanguageStat(lang scanner.Language) LanguageStat {
	return LanguageStat{
		Files:    lang.Files,
		Lines:    lang.Code + lang.Comments + lang.Blanks,
		Codes:    lang.Code,
		Comments: lang.Comments,
		Blanks:   lang.Blanks,
	}
}

// Aggregate converts scanner output into response entries ordered by line count,
// largest first, and sums them into a total. Languages with equal line counts
// keep the order the scanner reported them in.
func Aggregate(languages []scanner.Language) ([]Entry, LanguageStat) {
	entries := lo.Map(languages, func(lang scanner.Language, _ int) Entry {
		return Entry{Language: lang.Name, Stat: newLanguageStat(lang)}
	})

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.Stat.Lines, a.Stat.Lines)
	})

	total := lo.Reduce(entries, func(acc LanguageStat, entry Entry, _ int) LanguageStat {
		return acc.add(entry.Stat)
	}, LanguageStat{})

	return entries, total
}
