package workspace

// Workspace is a per-request scratch directory holding one cloned repository.
type Workspace struct {
	ID  string // Unique workspace identifier
	Dir string // Absolute path to the directory
}
