package notification

import (
	"context"

	"tourdesk/models"
)

// Dispatcher hands notifications to the background queue. Enqueue errors are
// returned so callers can log them; callers never roll back on failure.
type Dispatcher interface {
	BookingConfirmed(ctx context.Context, payload models.BookingConfirmedPayload) error
	CompanyWelcome(ctx context.Context, payload models.CompanyWelcomePayload) error
	ChatReply(ctx context.Context, payload models.ChatReplyPayload) error
}

// Messenger delivers WhatsApp messages.
type Messenger interface {
	SendText(ctx context.Context, to, body string) error
	SendTemplate(ctx context.Context, to, name string, params []string) error
}

// Mailer delivers HTML email.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
