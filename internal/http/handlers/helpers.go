// README: Shared JSON error responses and sentinel-to-status mapping.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/modules/collab"
	"tripweaver/internal/modules/execution"
	"tripweaver/internal/modules/poll"
	"tripweaver/internal/modules/receipt"
	"tripweaver/internal/modules/trip"
	"tripweaver/internal/planner"
	"tripweaver/internal/search"
)

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// writeServiceError maps module sentinel errors onto HTTP statuses. Unknown
// errors become an opaque 500; the detail stays in the server log.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrValidation),
		errors.Is(err, trip.ErrBadRequest),
		errors.Is(err, poll.ErrBadRequest),
		errors.Is(err, poll.ErrUnknownOption),
		errors.Is(err, receipt.ErrBadRequest),
		errors.Is(err, collab.ErrBadRequest),
		errors.Is(err, execution.ErrBadRequest),
		errors.Is(err, search.ErrBadQuery):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, trip.ErrNotFound),
		errors.Is(err, poll.ErrNotFound),
		errors.Is(err, execution.ErrNotActive):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, planner.ErrProviderUnavailable):
		writeError(c, http.StatusServiceUnavailable, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
