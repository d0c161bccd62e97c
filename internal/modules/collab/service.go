// README: Collaboration service: posting and reading trip messages.
package collab

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tripweaver/internal/types"
)

var ErrBadRequest = errors.New("bad message request")

const (
	maxBodyLen   = 2000
	defaultLimit = 50
	maxLimit     = 200
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) Post(ctx context.Context, tripID, userID types.ID, body string) (*Message, error) {
	body = strings.TrimSpace(body)
	if tripID == "" || userID == "" {
		return nil, fmt.Errorf("%w: tripId and userId are required", ErrBadRequest)
	}
	if body == "" {
		return nil, fmt.Errorf("%w: empty message", ErrBadRequest)
	}
	if len(body) > maxBodyLen {
		return nil, fmt.Errorf("%w: message exceeds %d characters", ErrBadRequest, maxBodyLen)
	}

	m := &Message{
		TripID:    tripID,
		UserID:    userID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) List(ctx context.Context, tripID types.ID, limit int) ([]*Message, error) {
	if tripID == "" {
		return nil, fmt.Errorf("%w: tripId is required", ErrBadRequest)
	}
	limit = clampLimit(limit)
	return s.store.ListByTrip(ctx, tripID, limit)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
