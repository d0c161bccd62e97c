// README: Trip service: persistence, share links, and duplication.
package trip

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tripweaver/internal/types"
)

var (
	ErrNotFound   = errors.New("trip not found")
	ErrBadRequest = errors.New("bad trip request")
)

// duplicateShift is how far a duplicated trip moves into the future.
const duplicateShift = 7 * 24 * time.Hour

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

type CreateCommand struct {
	OwnerID     types.ID
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Travelers   int
	Budget      types.Money
	Itinerary   json.RawMessage
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Trip, error) {
	if strings.TrimSpace(cmd.Destination) == "" {
		return nil, fmt.Errorf("%w: destination is required", ErrBadRequest)
	}
	if cmd.EndDate.Before(cmd.StartDate) {
		return nil, ErrBadRequest
	}
	if cmd.Travelers < 1 {
		cmd.Travelers = 1
	}
	if len(cmd.Itinerary) == 0 {
		return nil, ErrBadRequest
	}

	t := &Trip{
		ID:          types.ID(uuid.NewString()),
		OwnerID:     cmd.OwnerID,
		Destination: cmd.Destination,
		StartDate:   cmd.StartDate,
		EndDate:     cmd.EndDate,
		Travelers:   cmd.Travelers,
		Budget:      cmd.Budget,
		Itinerary:   cmd.Itinerary,
		ShareToken:  newToken(),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Trip, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) GetByShareToken(ctx context.Context, token string) (*Trip, error) {
	if token == "" {
		return nil, ErrBadRequest
	}
	return s.store.GetByShareToken(ctx, token)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID types.ID) ([]*Trip, error) {
	return s.store.ListByOwner(ctx, ownerID)
}

// Duplicate clones a trip a week into the future with a fresh identity and
// share token. The itinerary payload is carried over as-is; only day dates
// inside it are shifted.
func (s *Service) Duplicate(ctx context.Context, id types.ID) (*Trip, error) {
	src, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	dup := cloneShifted(src, duplicateShift)
	if err := s.store.Create(ctx, dup); err != nil {
		return nil, err
	}
	return dup, nil
}

func (s *Service) Delete(ctx context.Context, id types.ID) error {
	return s.store.Delete(ctx, id)
}

// cloneShifted builds the duplicate in memory; separated out so the date
// arithmetic stays testable without a database.
func cloneShifted(src *Trip, shift time.Duration) *Trip {
	dup := *src
	dup.ID = types.ID(uuid.NewString())
	dup.ShareToken = newToken()
	dup.StartDate = src.StartDate.Add(shift)
	dup.EndDate = src.EndDate.Add(shift)
	dup.CreatedAt = time.Now().UTC()
	dup.Itinerary = shiftItineraryDates(src.Itinerary, shift)
	return &dup
}

// shiftItineraryDates rewrites "date" fields in the stored itinerary JSON.
// The payload is opaque to this module otherwise; unparseable payloads are
// returned unchanged.
func shiftItineraryDates(raw json.RawMessage, shift time.Duration) json.RawMessage {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return raw
	}
	days, ok := doc["days"].([]any)
	if !ok {
		return raw
	}
	for _, d := range days {
		day, ok := d.(map[string]any)
		if !ok {
			continue
		}
		ds, ok := day["date"].(string)
		if !ok {
			continue
		}
		t, err := time.Parse("2006-01-02", ds)
		if err != nil {
			continue
		}
		day["date"] = t.Add(shift).Format("2006-01-02")
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return raw
	}
	return out
}

func newToken() string {
	var b [9]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
