package dto

// CreateRequest is the body of an event creation request.
type CreateRequest struct {
	Title       string `json:"title" validate:"required"`
	DueAt       string `json:"due_at" validate:"required"`
	Description string `json:"description"`
}
