// README: Input validation and structural checks on provider output.
package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	ErrValidation          = errors.New("invalid trip preferences")
	ErrProviderUnavailable = errors.New("generation provider unavailable")
	ErrSchemaViolation     = errors.New("provider returned malformed itinerary")
)

const dateLayout = "2006-01-02"

var timeOfDayRe = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	// Clients sometimes send full timestamps; only the calendar date matters.
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// normalize validates raw preferences and derives dates and budget targets.
// All failures wrap ErrValidation; callers must not retry them.
func normalize(p Preferences) (normalized, error) {
	n := normalized{Preferences: p}

	if strings.TrimSpace(p.Destination) == "" {
		return n, fmt.Errorf("%w: destination is required", ErrValidation)
	}
	start, err := parseDate(p.StartDate)
	if err != nil {
		return n, fmt.Errorf("%w: bad startDate %q", ErrValidation, p.StartDate)
	}
	end, err := parseDate(p.EndDate)
	if err != nil {
		return n, fmt.Errorf("%w: bad endDate %q", ErrValidation, p.EndDate)
	}
	if end.Before(start) {
		return n, fmt.Errorf("%w: endDate before startDate", ErrValidation)
	}
	if p.Travelers < 1 {
		return n, fmt.Errorf("%w: travelers must be >= 1", ErrValidation)
	}
	if p.BudgetTotal < 0 {
		return n, fmt.Errorf("%w: budgetTotal must be >= 0", ErrValidation)
	}
	cur := strings.ToUpper(strings.TrimSpace(p.Currency))
	if len(cur) != 3 {
		return n, fmt.Errorf("%w: currency must be a 3-letter ISO code", ErrValidation)
	}
	n.Currency = cur

	switch strings.ToLower(strings.TrimSpace(p.Pace)) {
	case "", PaceModerate, "standard", "balanced":
		n.Pace = PaceModerate
	case PaceRelaxed:
		n.Pace = PaceRelaxed
	case PaceFast, "intense", "packed":
		n.Pace = PaceFast
	default:
		return n, fmt.Errorf("%w: unknown pace %q", ErrValidation, p.Pace)
	}

	n.start = start
	n.end = end
	n.totalDays = int(end.Sub(start).Hours()/24) + 1
	n.dailyTarget = float64(p.BudgetTotal) / float64(n.totalDays)
	return n, nil
}

// decodeItinerary parses raw provider text and checks it against the schema.
// It returns a non-empty violation description when the shape is wrong; the
// description is fed back to the provider on the corrective retry.
func decodeItinerary(raw string, n normalized) (*Itinerary, string) {
	var it Itinerary
	if err := json.Unmarshal([]byte(raw), &it); err != nil {
		return nil, fmt.Sprintf("response was not valid JSON for the itinerary schema: %v", err)
	}
	if v := checkShape(&it, n); v != "" {
		return nil, v
	}
	return &it, ""
}

// checkShape performs structural and type checks on an already-parsed
// itinerary. The provider is untrusted input; nothing is assumed present.
func checkShape(it *Itinerary, n normalized) string {
	if len(it.Days) == 0 {
		return `missing or empty "days" array`
	}
	if len(it.Days) != n.totalDays {
		return fmt.Sprintf("expected %d days, got %d", n.totalDays, len(it.Days))
	}
	seen := make(map[string]bool, len(it.Days))
	for i, d := range it.Days {
		date, err := time.Parse(dateLayout, d.Date)
		if err != nil {
			return fmt.Sprintf("day %d has bad date %q (want YYYY-MM-DD)", i+1, d.Date)
		}
		if date.Before(n.start) || date.After(n.end) {
			return fmt.Sprintf("day %d date %s is outside the trip range", i+1, d.Date)
		}
		if seen[d.Date] {
			return fmt.Sprintf("duplicate date %s", d.Date)
		}
		seen[d.Date] = true
		if len(d.Items) == 0 {
			return fmt.Sprintf("day %d (%s) has no items", i+1, d.Date)
		}
		for j, item := range d.Items {
			if !timeOfDayRe.MatchString(item.Time) {
				return fmt.Sprintf("day %d item %d has bad time %q (want HH:MM)", i+1, j+1, item.Time)
			}
			if strings.TrimSpace(item.Title) == "" {
				return fmt.Sprintf("day %d item %d has an empty title", i+1, j+1)
			}
			if !validCategories[item.Category] {
				return fmt.Sprintf("day %d item %d has unknown category %q", i+1, j+1, item.Category)
			}
			if item.EstCost < 0 {
				return fmt.Sprintf("day %d item %d has negative estCost", i+1, j+1)
			}
			if !validBookingTypes[item.Booking.Type] {
				return fmt.Sprintf("day %d item %d has unknown booking type %q", i+1, j+1, item.Booking.Type)
			}
		}
	}
	return ""
}
