package generations

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("generation not found")

// one output file produced by the generation provider
type GeneratedFile struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
	Language string `json:"language"`
}

// GeneratedFiles is stored as jsonb on Postgres and serialized text on
// SQLite. Both drivers go through Value/Scan, so callers always observe
// the parsed structure regardless of the backend.
type GeneratedFiles []GeneratedFile

func (f GeneratedFiles) Value() (driver.Value, error) {
	if len(f) == 0 {
		return "[]", nil
	}

	bytes, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}

	return string(bytes), nil
}

func (f *GeneratedFiles) Scan(value interface{}) error {
	if value == nil {
		*f = GeneratedFiles{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	default:
		return fmt.Errorf("cannot scan %T into GeneratedFiles", value)
	}
}

// a persisted code generation record
type Generation struct {
	ID            string         `json:"id"`
	UserID        *string        `json:"user_id,omitempty"`
	Prompt        string         `json:"prompt"`
	Language      string         `json:"language"`
	Framework     *string        `json:"framework,omitempty"`
	GeneratedCode GeneratedFiles `json:"generated_code"`
	Explanation   string         `json:"explanation"`
	CreatedAt     time.Time      `json:"created_at"`
}

// contains data for inserting a generation record
type CreateParams struct {
	Prompt        string
	Language      string
	Framework     string // empty means no framework
	GeneratedCode GeneratedFiles
	Explanation   string
	UserID        string // empty means anonymous
}

// Repository is the persistence gateway contract shared by both backends
type Repository interface {
	Create(ctx context.Context, params CreateParams) (*Generation, error)
	List(ctx context.Context, limit int, userID string) ([]Generation, error)
	Get(ctx context.Context, id string) (*Generation, error)
}

// converts an optional string to its nullable column form
func nullable(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
