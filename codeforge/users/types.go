package users

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("user not found")

// represents an authenticated user
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Avatar    *string   `json:"avatar,omitempty"`
	GoogleID  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Repository is the user storage contract shared by both backends.
// FindOrCreateByGoogle refreshes name and avatar on every login.
type Repository interface {
	FindOrCreateByGoogle(ctx context.Context, googleID, email, name, avatar string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
}

// converts an optional string to its nullable column form
func nullable(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
