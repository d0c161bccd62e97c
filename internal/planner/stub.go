// README: Deterministic fallback itinerary used when synthesis fails.
package planner

import (
	"fmt"

	"tripweaver/internal/poi"
)

// stubItinerary builds a minimal schema-valid plan with placeholder items.
// It is fully deterministic so a failed generation never surfaces a raw
// error to the end user. Costs are derived from the daily budget target so
// the plan stays plausible in any currency.
func stubItinerary(n normalized) *Itinerary {
	sights := poi.Sights(n.Destination)
	freeSights := poi.FreeSights(n.Destination, 0)
	foods := poi.SignatureFoods(n.Destination)

	pct := func(share float64) int64 {
		if n.dailyTarget <= 0 {
			return 0
		}
		return int64(n.dailyTarget * share)
	}

	it := &Itinerary{Currency: n.Currency, Days: make([]Day, 0, n.totalDays)}
	for i := 0; i < n.totalDays; i++ {
		date := n.start.AddDate(0, 0, i)

		morning := DayItem{
			Time: "10:30", Title: "Visit a main attraction", Category: "sightseeing",
			EstCost: pct(0.25), Notes: "Explore the main sights",
			Booking: Booking{Type: "ticket"},
		}
		if len(sights) > 0 {
			s := sights[i%len(sights)]
			morning.Title = s.Title
			morning.Lat, morning.Lng = ptr(s.Lat), ptr(s.Lng)
			morning.EstCost = s.EstCost
		}
		if i == 0 && len(n.MustSee) > 0 {
			morning.Title = n.MustSee[0]
			morning.Lat, morning.Lng = nil, nil
			morning.Notes = "Plan early to avoid queues"
			morning.EstCost = pct(0.25)
		}

		lunch := DayItem{
			Time: "13:00", Title: "Lunch at a local restaurant", Category: "food",
			EstCost: pct(0.15), Notes: "Enjoy local cuisine",
			Booking: Booking{Type: "none"},
		}
		if len(foods) > 0 {
			lunch.Notes = fmt.Sprintf("Try %s", foods[i%len(foods)])
		}

		free := DayItem{
			Time: "15:30", Title: "Neighborhood walk", Category: "rest",
			EstCost: 0, Notes: fmt.Sprintf("Wander %s like a local", n.Destination),
			Booking: Booking{Type: "none"},
		}
		if len(freeSights) > 0 {
			s := freeSights[i%len(freeSights)]
			free.Title = s.Title
			free.Category = "sightseeing"
			free.Lat, free.Lng = ptr(s.Lat), ptr(s.Lng)
		}

		items := []DayItem{
			{
				Time: "09:00", Title: "Breakfast at a local café", Category: "food",
				EstCost: pct(0.1), Notes: "Start the day with a local breakfast",
				Booking: Booking{Type: "none"},
			},
			morning,
			lunch,
			free,
			{
				Time: "19:00", Title: "Dinner", Category: "food",
				EstCost: pct(0.2), Notes: "Relaxed evening meal",
				Booking: Booking{Type: "none"},
			},
		}

		switch n.Pace {
		case PaceRelaxed:
			// Drop the morning sight; keep the free afternoon.
			items = append(items[:1], items[2:]...)
		case PaceFast:
			items = append(items, DayItem{
				Time: "21:00", Title: "Evening stroll", Category: "rest",
				EstCost: 0, Notes: "Optional late walk for night owls",
				Booking: Booking{Type: "none"},
			})
		}

		it.Days = append(it.Days, Day{
			Date:    date.Format(dateLayout),
			Summary: fmt.Sprintf("Day %d in %s", i+1, n.Destination),
			Items:   items,
		})
	}
	recomputeTotals(it)
	return it
}

func ptr(f float64) *float64 { return &f }
