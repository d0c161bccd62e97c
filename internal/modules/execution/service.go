// README: Execution service: live session lifecycle and progress tracking.
package execution

import (
	"context"
	"errors"
	"log"
	"time"

	"tripweaver/internal/types"
)

var (
	ErrNotActive  = errors.New("execution not active for this trip")
	ErrBadRequest = errors.New("bad execution request")
)

// arrivalRadiusKm is how close the traveler must get to a stop before it
// counts as reached.
const arrivalRadiusKm = 0.05

// StopSource resolves the ordered navigation stops of a trip's itinerary.
type StopSource interface {
	Stops(ctx context.Context, tripID types.ID) ([]Stop, error)
}

type Service struct {
	store *Store
	stops StopSource
}

func NewService(store *Store, stops StopSource) *Service {
	return &Service{store: store, stops: stops}
}

func (s *Service) Start(ctx context.Context, tripID, userID types.ID) (*Session, error) {
	if tripID == "" || userID == "" {
		return nil, ErrBadRequest
	}
	// Confirm the trip has something to navigate before going live.
	if _, err := s.stops.Stops(ctx, tripID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	sess := &Session{
		TripID:     tripID,
		UserID:     userID,
		Active:     true,
		StartedAt:  now,
		LastUpdate: now,
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *Service) Stop(ctx context.Context, tripID types.ID) error {
	if _, err := s.store.Get(ctx, tripID); err != nil {
		return err
	}
	return s.store.Delete(ctx, tripID)
}

// UpdateLocation records the traveler's position, advances past any stop
// within the arrival radius, and returns the refreshed status.
func (s *Service) UpdateLocation(ctx context.Context, tripID, userID types.ID, pos types.Point, accuracy float64) (*Status, error) {
	sess, err := s.store.Get(ctx, tripID)
	if err != nil {
		return nil, err
	}
	sess.Location = pos
	sess.Accuracy = accuracy
	sess.LastUpdate = time.Now().UTC()

	stops, err := s.stops.Stops(ctx, tripID)
	if err != nil {
		return nil, err
	}
	for sess.CurrentIndex < len(stops) {
		next := stops[sess.CurrentIndex]
		if haversineKm(pos.Lat, pos.Lng, next.Point.Lat, next.Point.Lng) > arrivalRadiusKm {
			break
		}
		sess.CurrentIndex++
	}

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return buildStatus(sess, stops), nil
}

func (s *Service) Status(ctx context.Context, tripID types.ID) (*Status, error) {
	sess, err := s.store.Get(ctx, tripID)
	if err != nil {
		return nil, err
	}
	stops, err := s.stops.Stops(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return buildStatus(sess, stops), nil
}

func buildStatus(sess *Session, stops []Stop) *Status {
	st := &Status{Session: sess}
	if sess.CurrentIndex >= len(stops) {
		return st
	}
	next := stops[sess.CurrentIndex]
	st.NextStop = &next
	if sess.Location.Lat != 0 || sess.Location.Lng != 0 {
		st.DistanceKm = haversineKm(sess.Location.Lat, sess.Location.Lng, next.Point.Lat, next.Point.Lng)
		st.WalkingETA = walkingETAMin(st.DistanceKm)
	}
	return st
}

// RunJanitor drops sessions idle past maxIdle. Runs until ctx is cancelled.
func (s *Service) RunJanitor(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stale, err := s.store.StaleSessions(ctx, maxIdle)
			if err != nil {
				log.Printf("execution: janitor scan failed: %v", err)
				continue
			}
			for _, tripID := range stale {
				if err := s.store.Delete(ctx, tripID); err != nil {
					log.Printf("execution: janitor delete failed for %s: %v", tripID, err)
					continue
				}
				log.Printf("execution: expired stale session for trip %s", tripID)
			}
		}
	}
}
