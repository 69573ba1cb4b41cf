package scanner

// Language holds raw line counts for one detected language.
type Language struct {
	Name     string
	Files    int
	Code     int
	Comments int
	Blanks   int
}
