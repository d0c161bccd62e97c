// README: Static city → remarkable sights/foods lookup used for prompt enrichment and fallbacks.
package poi

import "strings"

// Sight is a notable attraction with a rough cost estimate in major currency units.
type Sight struct {
	Title   string   `json:"title"`
	Lat     float64  `json:"lat"`
	Lng     float64  `json:"lng"`
	Tags    []string `json:"tags"`
	EstCost int64    `json:"estCost"`
	Open    string   `json:"open,omitempty"`
	Close   string   `json:"close,omitempty"`
	// Closed lists weekday names the sight is shut (e.g. "Monday").
	Closed []string `json:"closed,omitempty"`
}

// City bundles the curated sights and signature foods for one destination.
type City struct {
	City           string   `json:"city"`
	Country        string   `json:"country"`
	Sights         []Sight  `json:"sights"`
	SignatureFoods []string `json:"signatureFoods"`
}

// Lookup returns the curated record for a city name, case-insensitively.
// The second return value reports whether the city is known.
func Lookup(cityName string) (City, bool) {
	needle := strings.ToLower(strings.TrimSpace(cityName))
	for _, c := range cities {
		if strings.ToLower(c.City) == needle {
			return c, true
		}
	}
	return City{}, false
}

// Sights returns the curated sights for a city, or nil when unknown.
func Sights(cityName string) []Sight {
	c, ok := Lookup(cityName)
	if !ok {
		return nil
	}
	return c.Sights
}

// SignatureFoods returns the signature foods for a city, or nil when unknown.
func SignatureFoods(cityName string) []string {
	c, ok := Lookup(cityName)
	if !ok {
		return nil
	}
	return c.SignatureFoods
}

// FreeSights returns the sights of a city costing at most threshold.
func FreeSights(cityName string, threshold int64) []Sight {
	var out []Sight
	for _, s := range Sights(cityName) {
		if s.EstCost <= threshold {
			out = append(out, s)
		}
	}
	return out
}
