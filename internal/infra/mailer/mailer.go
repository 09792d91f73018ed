// Package mailer provides abstraction for delivering comment notification
// mail. It defines the Mailer interface which allows different delivery
// mechanisms (SMTP, no-op for disabled mail) to be used interchangeably
// through dependency injection.
package mailer

import (
	"context"

	"inkpress/internal/domain/entity"
)

// Mailer delivers a comment notification to one recipient.
// Implementations handle rate limiting and circuit breaking internally.
type Mailer interface {
	// Send delivers a notification about a newly posted comment.
	//
	// Parameters:
	//   - ctx: Context for cancellation control
	//   - to: Recipient address (must be non-empty)
	//   - detail: The comment, with parent resolved and content rendered
	//
	// Returns a non-nil error when delivery failed. Callers treat a
	// failure as terminal for that notification; there is no retry.
	Send(ctx context.Context, to string, detail *entity.CommentDetail) error
}
