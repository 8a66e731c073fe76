package chatSessionRepo

import (
	"context"

	"tourdesk/models"
)

// ChatSessionStore persists one conversation per phone number.
type ChatSessionStore interface {
	// Get returns (nil, nil) when the phone has never written.
	Get(ctx context.Context, phone string) (*models.ChatSession, error)
	// Save upserts the session keyed by phone.
	Save(ctx context.Context, session *models.ChatSession) error
}
