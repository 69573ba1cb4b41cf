package scanner

type Config struct {
	// ExcludeDirs is a regular expression; files in matching directories are skipped.
	ExcludeDirs string
}
