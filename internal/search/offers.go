// README: Activity and stay offers built from the curated POI table.
package search

import (
	"fmt"
	"net/url"
	"strings"

	"tripweaver/internal/poi"
)

// Offer is the supplier-neutral shape shared by activity and stay results.
type Offer struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Price    int64    `json:"price"`
	Currency string   `json:"currency"`
	Supplier string   `json:"supplier"`
	URL      string   `json:"url"`
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`
	StartAt  string   `json:"startAt,omitempty"`
	EndAt    string   `json:"endAt,omitempty"`
}

// SearchActivities builds offers from the curated sights of the destination.
// Unknown cities return an empty slice, not an error; the client shows a
// deep link instead.
func SearchActivities(destination, currency string) []Offer {
	if currency == "" {
		currency = "EUR"
	}
	city, ok := poi.Lookup(destination)
	if !ok {
		return []Offer{}
	}
	offers := make([]Offer, 0, len(city.Sights))
	for i, s := range city.Sights {
		lat, lng := s.Lat, s.Lng
		offers = append(offers, Offer{
			ID:       fmt.Sprintf("act-%s-%d", slug(city.City), i),
			Title:    s.Title,
			Price:    s.EstCost,
			Currency: currency,
			Supplier: "curated",
			URL:      activityDeepLink(city.City, s.Title),
			Lat:      &lat,
			Lng:      &lng,
		})
	}
	return offers
}

// StayDeepLink builds a lodging search hand-off link for the trip window.
func StayDeepLink(destination, checkin, checkout string, travelers int) string {
	if travelers < 1 {
		travelers = 1
	}
	v := url.Values{}
	v.Set("ss", destination)
	v.Set("checkin", checkin)
	v.Set("checkout", checkout)
	v.Set("group_adults", fmt.Sprint(travelers))
	v.Set("order", "price")
	return "https://www.booking.com/searchresults.html?" + v.Encode()
}

func activityDeepLink(city, title string) string {
	v := url.Values{}
	v.Set("q", fmt.Sprintf("%s %s", city, title))
	return "https://www.getyourguide.com/s/?" + v.Encode()
}

func slug(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "-"))
}
