package pdf

import (
	"github.com/a3tai/irdai-parser/internal/regulatory"
)

// FileInfo represents information about a PDF file
type FileInfo struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}

// Request Types

// ParseFilingRequest represents a request to parse one filing
type ParseFilingRequest struct {
	Path string `json:"path"`
}

// IdentifyFormsRequest represents a request to list the forms present in a filing
type IdentifyFormsRequest struct {
	Path string `json:"path"`
}

// ListFilingsRequest represents a request to discover filings in a directory
type ListFilingsRequest struct {
	Directory string `json:"directory"`
	Query     string `json:"query"`
}

// Response Types

// ParseFilingResult is a parsed filing together with where it came from
type ParseFilingResult struct {
	Path      string                       `json:"path"`
	PageCount int                          `json:"page_count"`
	Cached    bool                         `json:"cached"`
	Result    *regulatory.ExtractionResult `json:"-"`
}

// IdentifyFormsResult lists the known forms found in a filing
type IdentifyFormsResult struct {
	Path      string              `json:"path"`
	PageCount int                 `json:"page_count"`
	Forms     []string            `json:"forms"`
	Metadata  regulatory.Metadata `json:"metadata"`
}

// ListFilingsResult represents the result of a directory scan
type ListFilingsResult struct {
	Files       []FileInfo `json:"files"`
	TotalCount  int        `json:"total_count"`
	Directory   string     `json:"directory"`
	SearchQuery string     `json:"search_query,omitempty"`
}
