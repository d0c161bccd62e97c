// README: Prompt construction for the generative provider.
package planner

import (
	"fmt"
	"strings"

	"tripweaver/internal/poi"
)

// systemPrompt is the fixed travel-planning persona. The rules here are
// instructions to the provider; the only enforcement the service performs
// itself is the post-hoc shape check and totals recomputation.
const systemPrompt = `You are a travel-planning assistant. Output VALID JSON ONLY matching the provided schema. Create a realistic, budget-conscious day-by-day plan. Keep daily costs near target; prefer walkable clusters; include at least one free/low-cost item per day. No explanations.

Key requirements:
- Keep each day's item-cost subtotal within ±15% of the daily budget target
- Always include lunch and dinner suggestions, clustered near midday and evening
- Include 1-2 major sights per day
- Include at least one free/low-cost option per day
- Respect mustSee items and schedule them optimally
- Never violate the stated dietary constraints in food item titles or notes
- Match the requested pace: fewer items for relaxed, more for fast
- If budget is tight, prefer free museums/parks and cheap eats
- Fill lat/lng as null when unknown
- Use realistic timing and a logical order of activities`

const schemaHint = `{
  "currency": "%s",
  "estimatedTotal": number,
  "days": [
    {
      "date": "YYYY-MM-DD",
      "summary": "string",
      "items": [
        {
          "time": "HH:MM",
          "title": "string",
          "category": "flight|hotel|activity|sightseeing|food|transport|rest",
          "lat": null,
          "lng": null,
          "durationMin": number,
          "estCost": number,
          "notes": "string",
          "booking": {"type": "flight|hotel|tour|ticket|none", "operator": null, "url": null}
        }
      ],
      "subtotal": number
    }
  ]
}`

// buildUserPrompt serializes the preferences, derived budget figures, and
// the target schema into the task instruction.
func buildUserPrompt(n normalized) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed day-by-day itinerary for a trip to %s from %s to %s.\n\n",
		n.Destination, n.start.Format(dateLayout), n.end.Format(dateLayout))
	fmt.Fprintf(&b, "Trip details:\n")
	fmt.Fprintf(&b, "- Total days: %d (one entry per calendar day, dates %s through %s)\n",
		n.totalDays, n.start.Format(dateLayout), n.end.Format(dateLayout))
	fmt.Fprintf(&b, "- Travelers: %d\n", n.Travelers)
	fmt.Fprintf(&b, "- Budget total: %d %s\n", n.BudgetTotal, n.Currency)
	fmt.Fprintf(&b, "- Daily budget target: %.2f %s\n", n.dailyTarget, n.Currency)
	fmt.Fprintf(&b, "- Pace: %s\n", n.Pace)
	fmt.Fprintf(&b, "- Interests: %s\n", listOrNone(n.Interests))
	fmt.Fprintf(&b, "- Dietary constraints: %s\n", listOrNone(n.Dietary))
	fmt.Fprintf(&b, "- Must see: %s\n", listOrNone(n.MustSee))

	if city, ok := poi.Lookup(n.Destination); ok {
		var names []string
		for _, s := range city.Sights {
			names = append(names, s.Title)
		}
		fmt.Fprintf(&b, "\nKnown highlights of %s: %s.\n", city.City, strings.Join(names, ", "))
		if len(city.SignatureFoods) > 0 {
			fmt.Fprintf(&b, "Signature local foods: %s.\n", strings.Join(city.SignatureFoods, ", "))
		}
	}

	fmt.Fprintf(&b, "\nReturn ONLY valid JSON matching this exact schema:\n")
	fmt.Fprintf(&b, schemaHint, n.Currency)
	return b.String()
}

// buildRetryPrompt re-states the task with the concrete violation found in
// the previous response.
func buildRetryPrompt(userPrompt, violation string) string {
	return fmt.Sprintf("%s\n\nYour previous response was rejected: %s.\nFix the response to match the exact schema. Return ONLY valid JSON.", userPrompt, violation)
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
