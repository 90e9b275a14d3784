package queries

import (
	"context"
	"errors"

	"bellebook/internal/domain/wizard"
	"bellebook/internal/infra/sessionstore"
	"bellebook/internal/pkg/errs"

	"github.com/google/uuid"
)

// SessionReader is the read side of the session store.
type SessionReader interface {
	Get(ctx context.Context, id uuid.UUID) (*wizard.Session, error)
}

type SessionQueries interface {
	Get(ctx context.Context, clientID, sessionID uuid.UUID) (*wizard.Session, error)
}

type sessionQueriesImpl struct {
	reader SessionReader
}

func NewSessionQueries(reader SessionReader) SessionQueries {
	return &sessionQueriesImpl{reader: reader}
}

// Get treats another client's session as nonexistent.
func (q *sessionQueriesImpl) Get(ctx context.Context, clientID, sessionID uuid.UUID) (*wizard.Session, error) {
	sess, err := q.reader.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionstore.ErrNotFound) {
			return nil, errs.ErrSessionNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	if sess.ClientID != clientID {
		return nil, errs.ErrSessionNotFound
	}
	return sess, nil
}
