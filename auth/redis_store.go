package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const redisKeyPrefix = "session:"

// RedisStore keeps sessions in Redis so multiple backend processes behind a
// load balancer can share them. Keys are written without a TTL; see the
// Session doc for the expiry caveat.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Create(session Session) (string, error) {
	token := uuid.NewString()
	session.Token = token

	data, err := json.Marshal(session)
	if err != nil {
		return "", fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.client.Set(context.Background(), redisKeyPrefix+token, data, 0).Err(); err != nil {
		return "", fmt.Errorf("failed to store session in redis: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Get(token string) (*Session, error) {
	data, err := s.client.Get(context.Background(), redisKeyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session from redis: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	session.Token = token
	return &session, nil
}

func (s *RedisStore) Delete(token string) error {
	return s.client.Del(context.Background(), redisKeyPrefix+token).Err()
}
