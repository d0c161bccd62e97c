// README: Live execution mode endpoints.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/modules/execution"
	"tripweaver/internal/types"
)

type ExecutionHandler struct {
	execution *execution.Service
}

func NewExecutionHandler(svc *execution.Service) *ExecutionHandler {
	return &ExecutionHandler{execution: svc}
}

type startExecutionReq struct {
	TripID string `json:"tripId"`
	UserID string `json:"userId"`
}

func (h *ExecutionHandler) Start(c *gin.Context) {
	var req startExecutionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	sess, err := h.execution.Start(c.Request.Context(), types.ID(req.TripID), types.ID(req.UserID))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "session": sess})
}

type stopExecutionReq struct {
	TripID string `json:"tripId"`
}

func (h *ExecutionHandler) Stop(c *gin.Context) {
	var req stopExecutionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.execution.Stop(c.Request.Context(), types.ID(req.TripID)); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type updateLocationReq struct {
	TripID    string  `json:"tripId"`
	UserID    string  `json:"userId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
}

func (h *ExecutionHandler) UpdateLocation(c *gin.Context) {
	var req updateLocationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	status, err := h.execution.UpdateLocation(c.Request.Context(),
		types.ID(req.TripID), types.ID(req.UserID),
		types.Point{Lat: req.Latitude, Lng: req.Longitude}, req.Accuracy)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
}

func (h *ExecutionHandler) Status(c *gin.Context) {
	tripID := c.Query("tripId")
	if tripID == "" {
		writeError(c, http.StatusBadRequest, "tripId is required")
		return
	}
	status, err := h.execution.Status(c.Request.Context(), types.ID(tripID))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
}
