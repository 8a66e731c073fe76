package chatSessionRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tourdesk/database"
	"tourdesk/models"
	"tourdesk/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type mongoChatSessionStore struct {
	coll *mongo.Collection
}

// NewMongoChatSessionStore keeps sessions in the chat_sessions collection.
func NewMongoChatSessionStore() ChatSessionStore {
	store := &mongoChatSessionStore{coll: database.DB().Collection("chat_sessions")}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := store.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "phone", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		utils.GetLogger().Warn("chat sessions: failed to create indexes", zap.Error(err))
	}
	return store
}

func (s *mongoChatSessionStore) Get(ctx context.Context, phone string) (*models.ChatSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var session models.ChatSession
	err := s.coll.FindOne(ctx, bson.M{"phone": phone}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load chat session for %s: %w", phone, err)
	}
	return &session, nil
}

func (s *mongoChatSessionStore) Save(ctx context.Context, session *models.ChatSession) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	session.UpdatedAt = time.Now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = session.UpdatedAt
	}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"phone": session.Phone}, session, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save chat session for %s: %w", session.Phone, err)
	}
	return nil
}
