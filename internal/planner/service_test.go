package planner

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"tripweaver/internal/config"
)

// scriptedProvider returns canned responses/errors in order and records the
// prompts it received.
type scriptedProvider struct {
	responses []string
	errs      []error
	calls     int
	prompts   []string
}

func (f *scriptedProvider) GenerateJSON(_ context.Context, _, user string) (string, error) {
	i := f.calls
	f.calls++
	f.prompts = append(f.prompts, user)
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return "", errors.New("no scripted response")
}

func testCfg() config.PlannerConfig {
	return config.PlannerConfig{
		Timeout:          time.Second,
		LowCostThreshold: 10,
		BudgetTolerance:  0.15,
		RetryDelay:       time.Millisecond,
		ProviderRPS:      1000,
	}
}

func romePrefs() Preferences {
	return Preferences{
		Destination: "Rome",
		StartDate:   "2025-09-01",
		EndDate:     "2025-09-05",
		Travelers:   2,
		Currency:    "EUR",
		BudgetTotal: 1200,
		Pace:        "moderate",
	}
}

// validResponse marshals a schema-valid 5-day Rome itinerary. Subtotals and
// the estimated total are deliberately wrong so tests can verify they get
// recomputed.
func validResponse(t *testing.T, itemCost int64) string {
	t.Helper()
	it := Itinerary{Currency: "EUR", EstimatedTotal: 999999}
	for i := 0; i < 5; i++ {
		date := time.Date(2025, 9, 1+i, 0, 0, 0, 0, time.UTC)
		it.Days = append(it.Days, Day{
			Date:    date.Format("2006-01-02"),
			Summary: "A day in Rome",
			Items: []DayItem{
				{Time: "09:00", Title: "Espresso at a bar", Category: "food", EstCost: 3, Notes: "standing room", Booking: Booking{Type: "none"}},
				{Time: "10:30", Title: "Colosseum", Category: "sightseeing", EstCost: itemCost, Notes: "prebook", Booking: Booking{Type: "ticket"}},
				{Time: "13:00", Title: "Trattoria lunch", Category: "food", EstCost: 20, Notes: "", Booking: Booking{Type: "none"}},
			},
			Subtotal: 12345,
		})
	}
	raw, err := json.Marshal(it)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return string(raw)
}

func TestGenerate_ValidResponse(t *testing.T) {
	p := &scriptedProvider{responses: []string{validResponse(t, 18)}}
	svc := NewService(p, testCfg())

	res, err := svc.Generate(context.Background(), romePrefs())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if p.calls != 1 {
		t.Errorf("provider calls = %d, want 1", p.calls)
	}
	if res.Fallback {
		t.Error("unexpected fallback")
	}
	it := res.Itinerary
	if len(it.Days) != 5 {
		t.Fatalf("days = %d, want 5", len(it.Days))
	}
	if it.Currency != "EUR" {
		t.Errorf("currency = %q, want EUR", it.Currency)
	}

	// Dates must be unique and inside the trip range.
	seen := map[string]bool{}
	for _, d := range it.Days {
		if seen[d.Date] {
			t.Errorf("duplicate date %s", d.Date)
		}
		seen[d.Date] = true
		if d.Date < "2025-09-01" || d.Date > "2025-09-05" {
			t.Errorf("date %s outside trip range", d.Date)
		}
	}
}

func TestGenerate_RecomputesTotals(t *testing.T) {
	p := &scriptedProvider{responses: []string{validResponse(t, 18)}}
	svc := NewService(p, testCfg())

	res, err := svc.Generate(context.Background(), romePrefs())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	var total int64
	for _, d := range res.Itinerary.Days {
		var sub int64
		for _, item := range d.Items {
			sub += item.EstCost
		}
		if d.Subtotal != sub {
			t.Errorf("day %s subtotal = %d, want %d (provider totals must not be trusted)", d.Date, d.Subtotal, sub)
		}
		total += sub
	}
	if res.Itinerary.EstimatedTotal != total {
		t.Errorf("estimatedTotal = %d, want %d", res.Itinerary.EstimatedTotal, total)
	}
}

func TestGenerate_LowCostGuarantee(t *testing.T) {
	// All items priced well above the threshold: the service must inject a
	// low-cost item into every day.
	it := Itinerary{Currency: "EUR"}
	for i := 0; i < 5; i++ {
		date := time.Date(2025, 9, 1+i, 0, 0, 0, 0, time.UTC)
		it.Days = append(it.Days, Day{
			Date: date.Format("2006-01-02"),
			Items: []DayItem{
				{Time: "10:00", Title: "Private tour", Category: "activity", EstCost: 150, Booking: Booking{Type: "tour"}},
			},
		})
	}
	raw, _ := json.Marshal(it)

	p := &scriptedProvider{responses: []string{string(raw)}}
	svc := NewService(p, testCfg())

	res, err := svc.Generate(context.Background(), romePrefs())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for _, d := range res.Itinerary.Days {
		has := false
		for _, item := range d.Items {
			if item.EstCost <= 10 {
				has = true
			}
		}
		if !has {
			t.Errorf("day %s has no low-cost item", d.Date)
		}
	}
}

func TestGenerate_MalformedThenValid(t *testing.T) {
	p := &scriptedProvider{responses: []string{"this is not json", validResponse(t, 18)}}
	svc := NewService(p, testCfg())

	res, err := svc.Generate(context.Background(), romePrefs())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if p.calls != 2 {
		t.Errorf("provider calls = %d, want 2 (exactly one corrective retry)", p.calls)
	}
	if res.Fallback {
		t.Error("retry succeeded; fallback must not trigger")
	}
	// The corrective retry must carry the violation back to the provider.
	if !strings.Contains(p.prompts[1], "previous response was rejected") {
		t.Errorf("retry prompt missing correction: %q", p.prompts[1])
	}
}

func TestGenerate_DoubleMalformedFallsBackToStub(t *testing.T) {
	p := &scriptedProvider{responses: []string{"nope", `{"days": "wrong type"}`}}
	svc := NewService(p, testCfg())

	res, err := svc.Generate(context.Background(), romePrefs())
	if err != nil {
		t.Fatalf("Generate() must not surface schema errors, got %v", err)
	}
	if p.calls != 2 {
		t.Errorf("provider calls = %d, want 2", p.calls)
	}
	if !res.Fallback || res.Provider != "stub" {
		t.Errorf("expected stub fallback, got fallback=%v provider=%q", res.Fallback, res.Provider)
	}
	if len(res.Itinerary.Days) != 5 {
		t.Errorf("stub days = %d, want 5", len(res.Itinerary.Days))
	}
	for _, d := range res.Itinerary.Days {
		if len(d.Items) == 0 {
			t.Errorf("stub day %s has no items", d.Date)
		}
	}
}

func TestGenerate_DayCountMismatchTriggersRetry(t *testing.T) {
	// 3 days delivered for a 5-day trip is a shape violation.
	short := Itinerary{Currency: "EUR"}
	for i := 0; i < 3; i++ {
		date := time.Date(2025, 9, 1+i, 0, 0, 0, 0, time.UTC)
		short.Days = append(short.Days, Day{
			Date:  date.Format("2006-01-02"),
			Items: []DayItem{{Time: "10:00", Title: "X", Category: "rest", Booking: Booking{Type: "none"}}},
		})
	}
	raw, _ := json.Marshal(short)

	p := &scriptedProvider{responses: []string{string(raw), validResponse(t, 18)}}
	svc := NewService(p, testCfg())

	res, err := svc.Generate(context.Background(), romePrefs())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if p.calls != 2 {
		t.Errorf("provider calls = %d, want 2", p.calls)
	}
	if len(res.Itinerary.Days) != 5 {
		t.Errorf("days = %d, want 5", len(res.Itinerary.Days))
	}
}

func TestGenerate_InvalidInputMakesNoOutboundCall(t *testing.T) {
	p := &scriptedProvider{}
	svc := NewService(p, testCfg())

	prefs := romePrefs()
	prefs.StartDate, prefs.EndDate = prefs.EndDate, prefs.StartDate

	_, err := svc.Generate(context.Background(), prefs)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
	if p.calls != 0 {
		t.Errorf("provider calls = %d, want 0", p.calls)
	}
}

func TestGenerate_TransportErrorRetriedOnce(t *testing.T) {
	p := &scriptedProvider{
		errs:      []error{errors.New("connection reset")},
		responses: []string{"", validResponse(t, 18)},
	}
	svc := NewService(p, testCfg())

	res, err := svc.Generate(context.Background(), romePrefs())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if p.calls != 2 {
		t.Errorf("provider calls = %d, want 2", p.calls)
	}
	if res.Fallback {
		t.Error("unexpected fallback after successful transport retry")
	}
}

func TestGenerate_TransportErrorTwiceSurfacesProviderUnavailable(t *testing.T) {
	p := &scriptedProvider{errs: []error{errors.New("timeout"), errors.New("timeout")}}
	svc := NewService(p, testCfg())

	_, err := svc.Generate(context.Background(), romePrefs())
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("error = %v, want ErrProviderUnavailable", err)
	}
	if p.calls != 2 {
		t.Errorf("provider calls = %d, want 2", p.calls)
	}
}

func TestGenerate_MustSeeAppendedWhenOmitted(t *testing.T) {
	p := &scriptedProvider{responses: []string{validResponse(t, 18)}}
	svc := NewService(p, testCfg())

	prefs := romePrefs()
	prefs.MustSee = []string{"Pantheon"}

	res, err := svc.Generate(context.Background(), prefs)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !mentions(res.Itinerary, "Pantheon") {
		t.Error("must-see item was not added to the itinerary")
	}
}

func TestGenerate_BudgetWarnings(t *testing.T) {
	// Daily target is 240 EUR; fixture days cost far less, so every day
	// should be flagged.
	p := &scriptedProvider{responses: []string{validResponse(t, 18)}}
	svc := NewService(p, testCfg())

	res, err := svc.Generate(context.Background(), romePrefs())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(res.Warnings) != 5 {
		t.Errorf("warnings = %d, want 5: %v", len(res.Warnings), res.Warnings)
	}
}

func TestStubItinerary_Deterministic(t *testing.T) {
	n, err := normalize(romePrefs())
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	a, _ := json.Marshal(stubItinerary(n))
	b, _ := json.Marshal(stubItinerary(n))
	if string(a) != string(b) {
		t.Error("stub itinerary is not deterministic")
	}
}

func TestStubItinerary_PaceChangesDensity(t *testing.T) {
	relaxed := romePrefs()
	relaxed.Pace = "relaxed"
	fast := romePrefs()
	fast.Pace = "fast"

	nr, _ := normalize(relaxed)
	nf, _ := normalize(fast)

	if lr, lf := len(stubItinerary(nr).Days[0].Items), len(stubItinerary(nf).Days[0].Items); lr >= lf {
		t.Errorf("relaxed day has %d items, fast has %d; want fewer for relaxed", lr, lf)
	}
}
