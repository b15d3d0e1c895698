package auth

import "github.com/codeforge/server/codeforge/users"

// UserResponse reports the session's user, or null when unauthenticated
type UserResponse struct {
	User          *users.User `json:"user"`
	Authenticated bool        `json:"authenticated"`
}

// MessageResponse is a plain confirmation body
type MessageResponse struct {
	Message string `json:"message"`
}
