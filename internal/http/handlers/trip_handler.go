// README: Trip CRUD, duplication, and public share endpoints.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/modules/trip"
	"tripweaver/internal/types"
)

type TripHandler struct {
	trips *trip.Service
	// ownerID stands in for a session until real auth lands.
	ownerID types.ID
}

func NewTripHandler(svc *trip.Service, ownerID types.ID) *TripHandler {
	return &TripHandler{trips: svc, ownerID: ownerID}
}

type createTripReq struct {
	Form struct {
		Destination string  `json:"destination"`
		StartDate   string  `json:"startDate"`
		EndDate     string  `json:"endDate"`
		Travelers   int     `json:"travelers"`
		Budget      float64 `json:"budget"`
		Currency    string  `json:"currency"`
	} `json:"form"`
	Itinerary json.RawMessage `json:"itinerary"`
}

func (h *TripHandler) Create(c *gin.Context) {
	var req createTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	start, err := parseAPIDate(req.Form.StartDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "bad startDate")
		return
	}
	end, err := parseAPIDate(req.Form.EndDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "bad endDate")
		return
	}
	currency := req.Form.Currency
	if currency == "" {
		currency = "USD"
	}
	t, err := h.trips.Create(c.Request.Context(), trip.CreateCommand{
		OwnerID:     h.ownerID,
		Destination: req.Form.Destination,
		StartDate:   start,
		EndDate:     end,
		Travelers:   req.Form.Travelers,
		Budget:      types.Money{Amount: int64(req.Form.Budget), Currency: currency},
		Itinerary:   req.Itinerary,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": t.ID, "trip": t})
}

func (h *TripHandler) Get(c *gin.Context) {
	t, err := h.trips.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TripHandler) List(c *gin.Context) {
	trips, err := h.trips.ListByOwner(c.Request.Context(), h.ownerID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

func (h *TripHandler) Duplicate(c *gin.Context) {
	dup, err := h.trips.Duplicate(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": dup.ID, "trip": dup})
}

func (h *TripHandler) Delete(c *gin.Context) {
	if err := h.trips.Delete(c.Request.Context(), types.ID(c.Param("id"))); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *TripHandler) GetPublic(c *gin.Context) {
	t, err := h.trips.GetByShareToken(c.Request.Context(), c.Param("shareToken"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, t.Public())
}

// parseAPIDate accepts both date-only and full timestamps.
func parseAPIDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
