package adapter

import "context"

// SendEmailInput represents an email to be sent.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails.
type EmailSender interface {
	// Send sends an email and returns the provider's message ID.
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}
