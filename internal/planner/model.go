// README: Itinerary synthesis types matching the wire schema.
package planner

import "time"

// Pace is the user-selected density of scheduled activities per day.
const (
	PaceRelaxed  = "relaxed"
	PaceModerate = "moderate"
	PaceFast     = "fast"
)

// Preferences is the immutable input to synthesis.
type Preferences struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"startDate"` // YYYY-MM-DD (RFC3339 accepted)
	EndDate     string   `json:"endDate"`
	Travelers   int      `json:"travelers"`
	Currency    string   `json:"currency"` // ISO 4217
	BudgetTotal int64    `json:"budgetTotal"`
	Pace        string   `json:"pace"`
	Interests   []string `json:"interests"`
	Dietary     []string `json:"dietary"`
	MustSee     []string `json:"mustSee"`
}

// Booking describes how (if at all) an item can be reserved.
type Booking struct {
	Type     string  `json:"type"` // flight|hotel|tour|ticket|none
	Operator *string `json:"operator"`
	URL      *string `json:"url"`
}

// DayItem is a single scheduled entry within a day.
type DayItem struct {
	Time        string   `json:"time"` // HH:MM local
	Title       string   `json:"title"`
	Category    string   `json:"category"` // flight|hotel|activity|sightseeing|food|transport|rest
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
	DurationMin int      `json:"durationMin,omitempty"`
	EstCost     int64    `json:"estCost"`
	Notes       string   `json:"notes"`
	Booking     Booking  `json:"booking"`
}

// Day is one calendar day of the plan. Subtotal is always recomputed from
// the items before a Day leaves this package.
type Day struct {
	Date     string    `json:"date"` // YYYY-MM-DD
	Summary  string    `json:"summary"`
	Items    []DayItem `json:"items"`
	Subtotal int64     `json:"subtotal"`
}

// Itinerary is the full multi-day plan. EstimatedTotal is always recomputed
// as the sum of day subtotals.
type Itinerary struct {
	Currency       string `json:"currency"`
	EstimatedTotal int64  `json:"estimatedTotal"`
	Days           []Day  `json:"days"`
}

// Result carries the itinerary plus synthesis metadata for observability.
type Result struct {
	Itinerary *Itinerary `json:"itinerary"`
	// Provider names what produced the itinerary ("llm" or "stub").
	Provider string `json:"provider"`
	// Fallback is true when the deterministic stub replaced a failed generation.
	Fallback bool `json:"fallback"`
	// Warnings lists post-hoc checks that did not hold (e.g. budget tolerance).
	Warnings []string `json:"warnings,omitempty"`
}

var validCategories = map[string]bool{
	"flight": true, "hotel": true, "activity": true, "sightseeing": true,
	"food": true, "transport": true, "rest": true,
}

var validBookingTypes = map[string]bool{
	"flight": true, "hotel": true, "tour": true, "ticket": true, "none": true,
}

// normalized is Preferences after input validation, with parsed dates and
// derived budget figures.
type normalized struct {
	Preferences
	start       time.Time
	end         time.Time
	totalDays   int
	dailyTarget float64
}
