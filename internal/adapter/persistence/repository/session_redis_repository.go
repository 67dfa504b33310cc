package repository

import (
	"context"
	"errors"
	"time"

	"tiffin_tales/internal/domain/entities"
	"tiffin_tales/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// redisClient is the subset of *redis.Client used by the session store.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// SessionRedisRepository stores each session as a JSON string whose key
// expires together with the session.
type SessionRedisRepository struct {
	rdb redisClient
	now func() time.Time
}

var _ interfaces.ISessionRepository = (*SessionRedisRepository)(nil)

func NewSessionRedisRepository(rdb *redis.Client) *SessionRedisRepository {
	return newSessionRedisRepository(rdb)
}

func newSessionRedisRepository(rdb redisClient) *SessionRedisRepository {
	return &SessionRedisRepository{rdb: rdb, now: time.Now}
}

func (r *SessionRedisRepository) Save(ctx context.Context, s entities.EstimatorSession) error {
	b, err := encodeSession(s)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, sessionKey(s.ID), b, remainingTTL(s, r.now())).Err()
}

func (r *SessionRedisRepository) Get(ctx context.Context, id string) (entities.EstimatorSession, error) {
	b, err := r.rdb.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.EstimatorSession{}, nil
	}
	if err != nil {
		return entities.EstimatorSession{}, err
	}

	s, err := decodeSession(b)
	if err != nil {
		return entities.EstimatorSession{}, err
	}
	if s.Expired(r.now()) {
		return entities.EstimatorSession{}, nil
	}
	return s, nil
}

func (r *SessionRedisRepository) Delete(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, sessionKey(id)).Err()
}
