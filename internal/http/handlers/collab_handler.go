// README: Collaboration message endpoints.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/modules/collab"
	"tripweaver/internal/types"
)

type CollabHandler struct {
	collab *collab.Service
}

func NewCollabHandler(svc *collab.Service) *CollabHandler {
	return &CollabHandler{collab: svc}
}

type postMessageReq struct {
	UserID string `json:"userId"`
	Body   string `json:"body"`
}

func (h *CollabHandler) Post(c *gin.Context) {
	var req postMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	m, err := h.collab.Post(c.Request.Context(), types.ID(c.Param("tripId")), types.ID(req.UserID), req.Body)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "message": m})
}

func (h *CollabHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	msgs, err := h.collab.List(c.Request.Context(), types.ID(c.Param("tripId")), limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}
