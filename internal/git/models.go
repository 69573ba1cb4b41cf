package git

// CloneRequest represents the request to clone a repository.
type CloneRequest struct {
	URL       string // Git repository URL
	Directory string // Existing empty directory to clone into
}

// metadataDir is the version control marker a successful clone must leave behind.
const metadataDir = ".git"
