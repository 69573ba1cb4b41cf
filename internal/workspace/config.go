package workspace

import "time"

type Config struct {
	// BaseDir is the parent of every workspace. Empty means os.TempDir().
	BaseDir string

	// StaleAfter is the age after which leftover workspaces are swept at startup.
	// Zero disables the sweep.
	StaleAfter time.Duration
}
