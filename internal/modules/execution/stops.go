// README: Adapter that derives navigation stops from a saved trip itinerary.
package execution

import (
	"context"
	"encoding/json"
	"fmt"

	"tripweaver/internal/modules/trip"
	"tripweaver/internal/planner"
	"tripweaver/internal/types"
)

// TripStopSource reads stops out of the trip store's itinerary payload.
// Items without coordinates cannot be navigated to and are skipped.
type TripStopSource struct {
	trips *trip.Service
}

func NewTripStopSource(trips *trip.Service) *TripStopSource {
	return &TripStopSource{trips: trips}
}

func (s *TripStopSource) Stops(ctx context.Context, tripID types.ID) ([]Stop, error) {
	t, err := s.trips.Get(ctx, tripID)
	if err != nil {
		return nil, err
	}
	var it planner.Itinerary
	if err := json.Unmarshal(t.Itinerary, &it); err != nil {
		return nil, fmt.Errorf("trip %s has an unreadable itinerary: %w", tripID, err)
	}
	return stopsFromItinerary(&it), nil
}

func stopsFromItinerary(it *planner.Itinerary) []Stop {
	var stops []Stop
	for _, d := range it.Days {
		for _, item := range d.Items {
			if item.Lat == nil || item.Lng == nil {
				continue
			}
			stops = append(stops, Stop{
				Time:  item.Time,
				Title: item.Title,
				Point: types.Point{Lat: *item.Lat, Lng: *item.Lng},
			})
		}
	}
	return stops
}
