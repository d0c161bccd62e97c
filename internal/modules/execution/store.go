// README: Execution session store backed by Redis.
package execution

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tripweaver/internal/types"
)

// sessionTTL bounds how long an abandoned session lingers; every write
// refreshes it.
const sessionTTL = 12 * time.Hour

type Store struct {
	redis *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{redis: rdb}
}

func sessionKey(tripID types.ID) string {
	return fmt.Sprintf("execution:session:%s", tripID)
}

func (s *Store) Save(ctx context.Context, sess *Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, sessionKey(sess.TripID), raw, sessionTTL).Err()
}

func (s *Store) Get(ctx context.Context, tripID types.ID) (*Session, error) {
	raw, err := s.redis.Get(ctx, sessionKey(tripID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotActive
	}
	if err != nil {
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *Store) Delete(ctx context.Context, tripID types.ID) error {
	return s.redis.Del(ctx, sessionKey(tripID)).Err()
}

// StaleSessions returns trip IDs whose sessions have not been updated within
// maxIdle. Used by the janitor; SCAN keeps it safe on a shared Redis.
func (s *Store) StaleSessions(ctx context.Context, maxIdle time.Duration) ([]types.ID, error) {
	var stale []types.ID
	iter := s.redis.Scan(ctx, 0, "execution:session:*", 100).Iterator()
	cutoff := time.Now().Add(-maxIdle)
	for iter.Next(ctx) {
		raw, err := s.redis.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			continue
		}
		var sess Session
		if err := json.Unmarshal(raw, &sess); err != nil {
			continue
		}
		if sess.LastUpdate.Before(cutoff) {
			stale = append(stale, sess.TripID)
		}
	}
	return stale, iter.Err()
}
