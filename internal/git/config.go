package git

import "time"

// Driver selects how repositories are cloned.
type Driver string

const (
	DriverGoGit Driver = "go-git" // in-process clone via go-git
	DriverCLI   Driver = "cli"    // subprocess clone via the git binary
)

type Config struct {
	Driver Driver
	// Binary is the git executable used by the CLI driver.
	Binary string

	// Timeout bounds the probe and the clone together. Zero disables it.
	Timeout time.Duration
	// ProbeTimeout bounds the reachability GET on its own. With zero the probe
	// is limited only by Timeout.
	ProbeTimeout time.Duration

	MaxConcurrentOperations int
}
