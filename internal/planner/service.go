// README: Itinerary synthesis service; wraps the generative provider in a validate/retry/fallback loop.
package planner

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"tripweaver/internal/ai"
	"tripweaver/internal/config"
	"tripweaver/internal/poi"
)

// Retry caps. Transport failures and schema failures are each retried once;
// validation failures are never retried.
const (
	transportRetryCap = 1
	schemaRetryCap    = 1
)

// genState models the generation control flow explicitly so the retry and
// fallback policy stays independently testable.
type genState int

const (
	stateRequesting genState = iota
	stateValidating
	stateRetrying
	stateFallback
	stateDone
)

// Service synthesizes itineraries from trip preferences. It is stateless and
// safe for concurrent use; each call is independent.
type Service struct {
	provider ai.Provider
	cfg      config.PlannerConfig
	limiter  *rate.Limiter
}

func NewService(provider ai.Provider, cfg config.PlannerConfig) *Service {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if cfg.LowCostThreshold <= 0 {
		cfg.LowCostThreshold = 10
	}
	if cfg.BudgetTolerance <= 0 {
		cfg.BudgetTolerance = 0.15
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 2 * time.Second
	}
	if cfg.ProviderRPS <= 0 {
		cfg.ProviderRPS = 1.0
	}
	return &Service{
		provider: provider,
		cfg:      cfg,
		limiter:  rate.NewLimiter(rate.Limit(cfg.ProviderRPS), 1),
	}
}

// Generate validates the preferences, asks the provider for a plan, and
// returns a fully consistent itinerary. Bad input fails fast with
// ErrValidation before any outbound call. Transport errors are retried once,
// then surface as ErrProviderUnavailable. Malformed provider output gets one
// corrective retry; if that also fails the deterministic stub is returned
// with Fallback set instead of an error.
func (s *Service) Generate(ctx context.Context, prefs Preferences) (*Result, error) {
	n, err := normalize(prefs)
	if err != nil {
		return nil, err
	}

	userPrompt := buildUserPrompt(n)
	prompt := userPrompt

	var (
		it               *Itinerary
		raw              string
		transportRetries int
		schemaRetries    int
	)
	res := &Result{Provider: "llm"}

	state := stateRequesting
	for state != stateDone {
		switch state {
		case stateRequesting, stateRetrying:
			raw, err = s.callProvider(ctx, prompt)
			if err != nil {
				if transportRetries >= transportRetryCap {
					return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
				}
				transportRetries++
				log.Printf("planner: provider call failed, retrying: %v", err)
				if err := s.pause(ctx); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
				}
				// Unchanged input on transport retries.
				continue
			}
			state = stateValidating

		case stateValidating:
			parsed, violation := decodeItinerary(raw, n)
			if violation != "" {
				if schemaRetries >= schemaRetryCap {
					log.Printf("planner: corrective retry also malformed (%s), falling back to stub", violation)
					state = stateFallback
					continue
				}
				schemaRetries++
				log.Printf("planner: malformed response (%s), issuing corrective retry", violation)
				prompt = buildRetryPrompt(userPrompt, violation)
				state = stateRetrying
				continue
			}
			it = parsed
			state = stateDone

		case stateFallback:
			it = stubItinerary(n)
			res.Provider = "stub"
			res.Fallback = true
			state = stateDone
		}
	}

	res.Itinerary = it
	res.Warnings = s.finalize(it, n)
	return res, nil
}

func (s *Service) callProvider(ctx context.Context, user string) (string, error) {
	// Respect the provider's rate limit instead of hammering it.
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}
	cctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()
	return s.provider.GenerateJSON(cctx, systemPrompt, user)
}

// pause waits the fixed retry delay, honoring cancellation.
func (s *Service) pause(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.cfg.RetryDelay):
		return nil
	}
}

// finalize makes the itinerary consistent regardless of what the provider
// returned: forced currency, the per-day low-cost guarantee, must-see
// coverage, and recomputed totals. It returns budget-tolerance warnings.
func (s *Service) finalize(it *Itinerary, n normalized) []string {
	it.Currency = n.Currency
	s.ensureLowCost(it, n)
	ensureMustSee(it, n)
	recomputeTotals(it)
	return budgetWarnings(it, n, s.cfg.BudgetTolerance)
}

// ensureLowCost injects a free item into any day that lacks one at or below
// the threshold. The prompt asks for this, but the provider is not trusted.
func (s *Service) ensureLowCost(it *Itinerary, n normalized) {
	freeSights := poi.FreeSights(n.Destination, 0)
	for i := range it.Days {
		has := false
		for _, item := range it.Days[i].Items {
			if item.EstCost <= s.cfg.LowCostThreshold {
				has = true
				break
			}
		}
		if has {
			continue
		}
		filler := DayItem{
			Time: "20:30", Title: "Evening stroll", Category: "rest",
			EstCost: 0, Notes: "Unwind with a free walk nearby",
			Booking: Booking{Type: "none"},
		}
		if len(freeSights) > 0 {
			sight := freeSights[i%len(freeSights)]
			filler.Title = sight.Title
			filler.Category = "sightseeing"
			filler.Lat, filler.Lng = ptr(sight.Lat), ptr(sight.Lng)
		}
		it.Days[i].Items = append(it.Days[i].Items, filler)
	}
}

// ensureMustSee appends any requested must-see place the provider omitted,
// using the POI table for coordinates and cost when the place is curated.
func ensureMustSee(it *Itinerary, n normalized) {
	sights := poi.Sights(n.Destination)
	for _, want := range n.MustSee {
		if want == "" || mentions(it, want) {
			continue
		}
		item := DayItem{
			Time: "17:00", Title: want, Category: "sightseeing",
			Notes:   "Added from your must-see list",
			Booking: Booking{Type: "none"},
		}
		for _, s := range sights {
			if strings.EqualFold(s.Title, want) {
				item.EstCost = s.EstCost
				item.Lat, item.Lng = ptr(s.Lat), ptr(s.Lng)
				break
			}
		}
		// Attach to the lightest day.
		best := 0
		for i := range it.Days {
			if len(it.Days[i].Items) < len(it.Days[best].Items) {
				best = i
			}
		}
		it.Days[best].Items = append(it.Days[best].Items, item)
	}
}

func mentions(it *Itinerary, place string) bool {
	needle := strings.ToLower(place)
	for _, d := range it.Days {
		for _, item := range d.Items {
			if strings.Contains(strings.ToLower(item.Title), needle) {
				return true
			}
		}
	}
	return false
}

// recomputeTotals derives every subtotal and the estimated total from the
// items. Provider-supplied totals are never trusted.
func recomputeTotals(it *Itinerary) {
	var total int64
	for i := range it.Days {
		var sub int64
		for _, item := range it.Days[i].Items {
			sub += item.EstCost
		}
		it.Days[i].Subtotal = sub
		total += sub
	}
	it.EstimatedTotal = total
}

// budgetWarnings flags days whose subtotal deviates from the daily target by
// more than the tolerance. Deviations are reported, never rejected.
func budgetWarnings(it *Itinerary, n normalized, tolerance float64) []string {
	if n.BudgetTotal <= 0 {
		return nil
	}
	var warnings []string
	for _, d := range it.Days {
		dev := math.Abs(float64(d.Subtotal) - n.dailyTarget)
		if dev > tolerance*n.dailyTarget {
			warnings = append(warnings, fmt.Sprintf(
				"day %s subtotal %d %s deviates more than %.0f%% from daily target %.2f",
				d.Date, d.Subtotal, it.Currency, tolerance*100, n.dailyTarget))
		}
	}
	return warnings
}
