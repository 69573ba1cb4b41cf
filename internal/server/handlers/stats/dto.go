package stats

import "github.com/apiarycd/repostats/internal/stats"

// Request is the payload for analysing a repository.
type Request struct {
	URL string `json:"url" validate:"required,url" example:"https://github.com/hhatto/gocloc.git"`
}

// Response is the language breakdown of a repository.
type Response = stats.Response
