package domain

import "context"

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required,email,max=320"`
	Message string `json:"message" validate:"required,min=1,max=5000"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContact dispatches a contact form message to the site owner
	// with reply-to set to the submitter.
	SendContact(ctx context.Context, req *ContactRequest) error
}
