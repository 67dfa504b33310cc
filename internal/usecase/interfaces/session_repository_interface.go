package interfaces

import (
	"context"

	"tiffin_tales/internal/domain/entities"
)

// ISessionRepository stores estimator sessions for their TTL.
//
// Get returns a zero-value session (empty ID) and a nil error when the id is
// unknown or the session has expired.
type ISessionRepository interface {
	Save(ctx context.Context, s entities.EstimatorSession) error
	Get(ctx context.Context, id string) (entities.EstimatorSession, error)
	Delete(ctx context.Context, id string) error
}
