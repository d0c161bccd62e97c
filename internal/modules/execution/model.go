// README: Live execution sessions for a trip in progress.
package execution

import (
	"time"

	"tripweaver/internal/types"
)

type Session struct {
	TripID       types.ID    `json:"tripId"`
	UserID       types.ID    `json:"userId"`
	Active       bool        `json:"active"`
	CurrentIndex int         `json:"currentIndex"`
	Location     types.Point `json:"location"`
	Accuracy     float64     `json:"accuracy,omitempty"`
	StartedAt    time.Time   `json:"startedAt"`
	LastUpdate   time.Time   `json:"lastUpdate"`
}

// Stop is a navigation target derived from an itinerary item.
type Stop struct {
	Time  string      `json:"time"`
	Title string      `json:"title"`
	Point types.Point `json:"point"`
}

// Status describes where the traveler is relative to the next stop.
type Status struct {
	Session    *Session `json:"session"`
	NextStop   *Stop    `json:"nextStop,omitempty"`
	DistanceKm float64  `json:"distanceKm"`
	WalkingETA int      `json:"walkingEtaMin"`
}
