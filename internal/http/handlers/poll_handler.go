// README: Poll creation, results, and voting endpoints.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/modules/poll"
	"tripweaver/internal/types"
)

type PollHandler struct {
	polls *poll.Service
}

func NewPollHandler(svc *poll.Service) *PollHandler {
	return &PollHandler{polls: svc}
}

type createPollReq struct {
	TripID  string   `json:"tripId"`
	Title   string   `json:"title"`
	Options []string `json:"options"`
}

func (h *PollHandler) Create(c *gin.Context) {
	var req createPollReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	p, err := h.polls.Create(c.Request.Context(), poll.CreateCommand{
		TripID:  types.ID(req.TripID),
		Title:   req.Title,
		Options: req.Options,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "poll": p})
}

func (h *PollHandler) Results(c *gin.Context) {
	res, err := h.polls.Results(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type voteReq struct {
	OptionID string `json:"optionId"`
}

// Vote records a choice. The voter identity rides in the X-Voter header;
// first-time voters get a token back to reuse.
func (h *PollHandler) Vote(c *gin.Context) {
	var req voteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	token, err := h.polls.Vote(c.Request.Context(), types.ID(c.Param("id")), req.OptionID, c.GetHeader("X-Voter"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "voterToken": token})
}
