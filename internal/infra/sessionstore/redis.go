package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"bellebook/internal/domain/wizard"
	"bellebook/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// RedisStore keeps wizard sessions as JSON blobs with a sliding TTL, the
// booking-session policy this service inherits: an abandoned wizard simply
// expires. Update runs under WATCH so a stale day-index write (or a
// double-submitted confirm) loses the race instead of clobbering newer state.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisStore(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisStore {
	return &RedisStore{client: client, ttl: ttl, logger: logger}
}

func sessionKey(id uuid.UUID) string {
	return "booking:session:" + id.String()
}

func (s *RedisStore) Create(ctx context.Context, sess *wizard.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return errs.Wrap(err, "marshal booking session")
	}
	if err := s.client.Set(ctx, sessionKey(sess.ID), data, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "store booking session")
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id uuid.UUID) (*wizard.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, errs.Wrap(err, "load booking session")
	}

	var sess wizard.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, errs.Wrap(err, "parse booking session")
	}
	return &sess, nil
}

func (s *RedisStore) Update(ctx context.Context, id uuid.UUID, fn func(*wizard.Session) error) (*wizard.Session, error) {
	key := sessionKey(id)
	var updated *wizard.Session

	txn := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrNotFound
			}
			return errs.Wrap(err, "load booking session")
		}

		var sess wizard.Session
		if err := json.Unmarshal([]byte(data), &sess); err != nil {
			return errs.Wrap(err, "parse booking session")
		}

		if err := fn(&sess); err != nil {
			return err
		}

		next, err := json.Marshal(&sess)
		if err != nil {
			return errs.Wrap(err, "marshal booking session")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, next, s.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		updated = &sess
		return nil
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := s.client.Watch(ctx, txn, key)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}

	s.logger.Warn("booking session update lost optimistic race", "session_id", id.String())
	return nil, ErrConflict
}

func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return errs.Wrap(err, "delete booking session")
	}
	return nil
}
