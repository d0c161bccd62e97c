// README: Itinerary synthesis endpoint.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/planner"
)

// Planner is the synthesis dependency; satisfied by *planner.Service.
type Planner interface {
	Generate(ctx context.Context, prefs planner.Preferences) (*planner.Result, error)
}

// Enricher optionally fills coordinates on generated items; nil disables it.
type Enricher interface {
	EnrichItinerary(ctx context.Context, city string, it *planner.Itinerary)
}

type ItineraryHandler struct {
	planner  Planner
	enricher Enricher
}

func NewItineraryHandler(p Planner, e Enricher) *ItineraryHandler {
	return &ItineraryHandler{planner: p, enricher: e}
}

type itineraryResponse struct {
	Itinerary *planner.Itinerary `json:"itinerary"`
	Provider  string             `json:"provider"`
	Fallback  bool               `json:"fallback"`
	Warnings  []string           `json:"warnings,omitempty"`
}

func (h *ItineraryHandler) Generate(c *gin.Context) {
	var prefs planner.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	res, err := h.planner.Generate(c.Request.Context(), prefs)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if h.enricher != nil {
		h.enricher.EnrichItinerary(c.Request.Context(), prefs.Destination, res.Itinerary)
	}
	c.JSON(http.StatusOK, itineraryResponse{
		Itinerary: res.Itinerary,
		Provider:  res.Provider,
		Fallback:  res.Fallback,
		Warnings:  res.Warnings,
	})
}
