package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/planner"
)

type fakePlanner struct {
	res *planner.Result
	err error
}

func (f *fakePlanner) Generate(_ context.Context, _ planner.Preferences) (*planner.Result, error) {
	return f.res, f.err
}

func newTestRouter(p Planner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewItineraryHandler(p, nil)
	r.POST("/api/itinerary", h.Generate)
	return r
}

const validBody = `{
	"destination": "Rome",
	"startDate": "2025-09-01",
	"endDate": "2025-09-05",
	"travelers": 2,
	"currency": "EUR",
	"budgetTotal": 1200
}`

func TestItineraryHandler_OK(t *testing.T) {
	p := &fakePlanner{res: &planner.Result{
		Itinerary: &planner.Itinerary{Currency: "EUR", EstimatedTotal: 400},
		Provider:  "llm",
		Warnings:  []string{"day 2025-09-01 subtotal 10 EUR deviates more than 15% from daily target 240.00"},
	}}
	r := newTestRouter(p)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/itinerary", strings.NewReader(validBody))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Itinerary *planner.Itinerary `json:"itinerary"`
		Provider  string             `json:"provider"`
		Fallback  bool               `json:"fallback"`
		Warnings  []string           `json:"warnings"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Provider != "llm" || resp.Fallback {
		t.Errorf("provider = %q fallback = %v", resp.Provider, resp.Fallback)
	}
	if len(resp.Warnings) != 1 {
		t.Errorf("warnings = %v", resp.Warnings)
	}
}

func TestItineraryHandler_ValidationError(t *testing.T) {
	p := &fakePlanner{err: planner.ErrValidation}
	r := newTestRouter(p)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/itinerary", strings.NewReader(validBody))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestItineraryHandler_ProviderUnavailable(t *testing.T) {
	p := &fakePlanner{err: planner.ErrProviderUnavailable}
	r := newTestRouter(p)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/itinerary", strings.NewReader(validBody))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestItineraryHandler_BadJSON(t *testing.T) {
	r := newTestRouter(&fakePlanner{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/itinerary", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
