package generations

import (
	"time"

	"github.com/codeforge/server/codeforge/generations"
)

// Summary is one entry in the history list (no file contents)
type Summary struct {
	ID        string    `json:"id"`
	Prompt    string    `json:"prompt"`
	Language  string    `json:"language"`
	Framework *string   `json:"framework,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Detail is the full record for a single generation
type Detail struct {
	ID          string                     `json:"id"`
	Prompt      string                     `json:"prompt"`
	Language    string                     `json:"language"`
	Framework   *string                    `json:"framework,omitempty"`
	Files       generations.GeneratedFiles `json:"files"`
	Explanation string                     `json:"explanation"`
	CreatedAt   time.Time                  `json:"createdAt"`
}
