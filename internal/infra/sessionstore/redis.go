package sessionstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-scheduler/internal/domain/booking"
)

const sessionPrefix = "booking:session:"

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, id uuid.UUID) (*booking.Session, error) {
	data, err := s.client.Get(ctx, sessionPrefix+id.String()).Bytes()
	if err == redis.Nil {
		return nil, booking.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess booking.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Save renova o TTL a cada etapa.
func (s *RedisStore) Save(ctx context.Context, sess *booking.Session) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionPrefix+sess.ID.String(), b, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.Del(ctx, sessionPrefix+id.String()).Err()
}

var _ booking.Store = (*RedisStore)(nil)
