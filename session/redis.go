package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// sessionKey is the single well-known Redis key holding the session.
const sessionKey = "storefront:session"

// redisStore implements Store using Redis. Useful when several storefront
// processes share one login.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// Restore implements Store.
func (s *redisStore) Restore(ctx context.Context) (*Session, error) {
	val, err := s.client.Get(ctx, sessionKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, err
	}

	// Refresh TTL on read
	_ = s.client.Expire(ctx, sessionKey, s.ttl).Err()

	return &sess, nil
}

// Save implements Store.
func (s *redisStore) Save(ctx context.Context, sess *Session) error {
	now := time.Now()
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = now
	}
	sess.UpdatedAt = now

	val, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey, val, s.ttl).Err()
}

// Clear implements Store.
func (s *redisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, sessionKey).Err()
}

// Close implements Store.
func (s *redisStore) Close() error {
	return s.client.Close()
}
