package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"tiffin_tales/internal/domain/entities"
)

const sessionKeyPrefix = "estimator:session:"

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func encodeSession(s entities.EstimatorSession) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode session %s: %w", s.ID, err)
	}
	return b, nil
}

func decodeSession(b []byte) (entities.EstimatorSession, error) {
	var s entities.EstimatorSession
	if err := json.Unmarshal(b, &s); err != nil {
		return entities.EstimatorSession{}, fmt.Errorf("decode session: %w", err)
	}
	return s, nil
}

// remainingTTL is the store expiry for s, never below one second so that a
// session saved right at its deadline is not stored without expiry.
func remainingTTL(s entities.EstimatorSession, now time.Time) time.Duration {
	ttl := s.ExpiresAt.Sub(now)
	if ttl < time.Second {
		return time.Second
	}
	return ttl
}
