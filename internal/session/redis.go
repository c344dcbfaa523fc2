package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"portfolio-be/internal/models"
)

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(redisURL string, ttl time.Duration) (Store, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		// If URL parsing fails, try as simple host:port
		opt = &redis.Options{Addr: redisURL}
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisStore{client: client, ttl: ttl}, nil
}

func identityKey(sid string) string { return fmt.Sprintf("session:%s:identity", sid) }
func historyKey(sid string) string  { return fmt.Sprintf("session:%s:history", sid) }

func (s *redisStore) IdentityToken(ctx context.Context, sid string) string {
	token, err := s.client.Get(ctx, identityKey(sid)).Result()
	if err != nil {
		return ""
	}
	return token
}

func (s *redisStore) SetIdentityToken(ctx context.Context, sid, token string) error {
	return s.client.Set(ctx, identityKey(sid), token, s.ttl).Err()
}

func (s *redisStore) History(ctx context.Context, sid string) []models.ChatTurn {
	data, err := s.client.Get(ctx, historyKey(sid)).Result()
	if err != nil {
		return nil
	}
	var history []models.ChatTurn
	if err := json.Unmarshal([]byte(data), &history); err != nil {
		return nil
	}
	return history
}

func (s *redisStore) SetHistory(ctx context.Context, sid string, history []models.ChatTurn) error {
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	return s.client.Set(ctx, historyKey(sid), data, s.ttl).Err()
}

func (s *redisStore) Clear(ctx context.Context, sid string) error {
	return s.client.Del(ctx, identityKey(sid), historyKey(sid)).Err()
}
