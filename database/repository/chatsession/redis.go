package chatSessionRepo

import (
	"context"
	"encoding/json"
	"time"

	"tourdesk/models"

	"github.com/go-redis/redis/v8"
)

const chatSessionPrefix = "chat:session:"

// RedisChatSessionStore keeps sessions as JSON strings. A zero ttl keeps them forever.
type RedisChatSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisChatSessionStore(client *redis.Client, ttl time.Duration) *RedisChatSessionStore {
	return &RedisChatSessionStore{client: client, ttl: ttl}
}

func (s *RedisChatSessionStore) Get(ctx context.Context, phone string) (*models.ChatSession, error) {
	data, err := s.client.Get(ctx, chatSessionPrefix+phone).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session models.ChatSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisChatSessionStore) Save(ctx context.Context, session *models.ChatSession) error {
	session.UpdatedAt = time.Now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = session.UpdatedAt
	}
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, chatSessionPrefix+session.Phone, b, s.ttl).Err()
}
