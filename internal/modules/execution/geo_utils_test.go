package execution

import (
	"math"
	"testing"

	"tripweaver/internal/types"
)

func TestHaversineKm(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		wantKm                 float64
		tolerance              float64
	}{
		{"same point", 41.9028, 12.4964, 41.9028, 12.4964, 0, 0.001},
		{"colosseum to vatican", 41.8902, 12.4922, 41.9029, 12.4534, 3.5, 0.5},
		{"rome to paris", 41.9028, 12.4964, 48.8566, 2.3522, 1105, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := haversineKm(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("haversineKm() = %.3f, want %.3f ± %.3f", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestWalkingETAMin(t *testing.T) {
	tests := []struct {
		km   float64
		want int
	}{
		{0, 0},
		{-1, 0},
		{4.5, 60},
		{0.75, 10},
		{1, 14}, // 13.33 rounds up
	}
	for _, tt := range tests {
		if got := walkingETAMin(tt.km); got != tt.want {
			t.Errorf("walkingETAMin(%v) = %d, want %d", tt.km, got, tt.want)
		}
	}
}

func TestBuildStatus(t *testing.T) {
	stops := []Stop{
		{Time: "10:30", Title: "Colosseum", Point: types.Point{Lat: 41.8902, Lng: 12.4922}},
		{Time: "15:30", Title: "Trastevere", Point: types.Point{Lat: 41.8867, Lng: 12.4692}},
	}
	sess := &Session{
		TripID:       "t1",
		Active:       true,
		CurrentIndex: 0,
		Location:     types.Point{Lat: 41.8955, Lng: 12.4823},
	}

	st := buildStatus(sess, stops)
	if st.NextStop == nil || st.NextStop.Title != "Colosseum" {
		t.Fatalf("nextStop = %+v, want Colosseum", st.NextStop)
	}
	if st.DistanceKm <= 0 || st.DistanceKm > 2 {
		t.Errorf("distance = %.3f km, want a short walk", st.DistanceKm)
	}
	if st.WalkingETA <= 0 {
		t.Errorf("walking ETA = %d, want > 0", st.WalkingETA)
	}

	// All stops done: no next stop.
	sess.CurrentIndex = len(stops)
	st = buildStatus(sess, stops)
	if st.NextStop != nil {
		t.Errorf("nextStop = %+v, want nil after the last stop", st.NextStop)
	}
}
