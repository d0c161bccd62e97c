// README: Google Places lookups used to fill in missing itinerary coordinates.
package maps

import (
	"context"
	"fmt"
	"log"

	"googlemaps.github.io/maps"

	"tripweaver/internal/planner"
)

// Place is a simplified location result.
type Place struct {
	Name    string
	Address string
	Lat     float64
	Lng     float64
	PlaceID string
}

// PlacesService handles interactions with the Google Places API. It is an
// optional collaborator: when no API key is configured callers hold a nil
// service and skip enrichment entirely.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a PlacesService with the given API key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// Locate resolves a free-text place name near a city to coordinates. The
// first text-search hit wins; a miss is reported as an error so callers can
// decide whether it matters.
func (s *PlacesService) Locate(ctx context.Context, city, name string) (Place, error) {
	r := &maps.TextSearchRequest{
		Query:    fmt.Sprintf("%s, %s", name, city),
		Language: "en",
	}
	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return Place{}, fmt.Errorf("places api error: %w", err)
	}
	if len(resp.Results) == 0 {
		return Place{}, fmt.Errorf("no result for %q in %s", name, city)
	}
	top := resp.Results[0]
	return Place{
		Name:    top.Name,
		Address: top.FormattedAddress,
		Lat:     top.Geometry.Location.Lat,
		Lng:     top.Geometry.Location.Lng,
		PlaceID: top.PlaceID,
	}, nil
}

// EnrichItinerary fills in coordinates for items that lack them. Lookups are
// best-effort: a failed lookup leaves the item untouched and enrichment
// continues with the rest. Food and rest items are skipped; their titles are
// descriptions, not place names.
func (s *PlacesService) EnrichItinerary(ctx context.Context, city string, it *planner.Itinerary) {
	for di := range it.Days {
		for ii := range it.Days[di].Items {
			item := &it.Days[di].Items[ii]
			if item.Lat != nil && item.Lng != nil {
				continue
			}
			switch item.Category {
			case "food", "rest", "transport", "flight":
				continue
			}
			place, err := s.Locate(ctx, city, item.Title)
			if err != nil {
				log.Printf("maps: skipping enrichment for %q: %v", item.Title, err)
				continue
			}
			lat, lng := place.Lat, place.Lng
			item.Lat, item.Lng = &lat, &lng
		}
	}
}
