package mailer

import (
	"context"

	"inkpress/internal/domain/entity"
)

// NoOpMailer is a no-operation implementation of the Mailer interface.
// It is used when mail is disabled to avoid nil checks in the code.
type NoOpMailer struct{}

// NewNoOpMailer creates a new NoOpMailer instance.
func NewNoOpMailer() *NoOpMailer {
	return &NoOpMailer{}
}

// Send does nothing and returns nil immediately.
func (m *NoOpMailer) Send(ctx context.Context, to string, detail *entity.CommentDetail) error {
	return nil
}
