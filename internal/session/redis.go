package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/config"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/model"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions as JSON values with a TTL, so in-flight
// assessments survive process restarts and can be served by any instance.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore creates a RedisStore whose sessions expire after ttl.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (st *RedisStore) Create(ctx context.Context, s *model.SessionState) error {
	s.Token = uuid.NewString()
	return st.put(ctx, s)
}

func (st *RedisStore) Get(ctx context.Context, token string) (*model.SessionState, error) {
	data, err := st.rdb.Get(ctx, config.CacheKey.SessionKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	s := &model.SessionState{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return s, nil
}

func (st *RedisStore) Save(ctx context.Context, s *model.SessionState) error {
	if s.Token == "" {
		return ErrNotFound
	}
	return st.put(ctx, s)
}

func (st *RedisStore) Delete(ctx context.Context, token string) error {
	if err := st.rdb.Del(ctx, config.CacheKey.SessionKey(token)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (st *RedisStore) put(ctx context.Context, s *model.SessionState) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := st.rdb.Set(ctx, config.CacheKey.SessionKey(s.Token), data, st.ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}
