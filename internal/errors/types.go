package errors

// ErrorResponse is the wire shape for failed requests
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"` // field-level detail, validation failures only
}

// FieldError describes a single failed validation constraint
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
