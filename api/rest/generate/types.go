package generate

import (
	"time"

	"github.com/codeforge/server/internal/generator"
)

// Request represents the request body for code generation
type Request struct {
	Prompt    string `json:"prompt" binding:"required,min=1,max=500"`
	Language  string `json:"language" binding:"required,min=1"`
	Framework string `json:"framework"`
}

// Response represents a successful code generation
type Response struct {
	ID          string           `json:"id"`
	Files       []generator.File `json:"files"`
	Explanation string           `json:"explanation"`
	CreatedAt   time.Time        `json:"createdAt"`
}
