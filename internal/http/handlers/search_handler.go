// README: Flight, activity, and POI lookup endpoints.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/poi"
	"tripweaver/internal/search"
)

type SearchHandler struct{}

func NewSearchHandler() *SearchHandler {
	return &SearchHandler{}
}

func (h *SearchHandler) Flights(c *gin.Context) {
	adults, _ := strconv.Atoi(c.Query("adults"))
	q := search.FlightQuery{
		From:       c.Query("from"),
		To:         c.Query("to"),
		DepartDate: c.Query("departDate"),
		ReturnDate: c.Query("returnDate"),
		Adults:     adults,
	}
	flights, err := search.SearchFlights(q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flights": flights})
}

func (h *SearchHandler) Activities(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		writeError(c, http.StatusBadRequest, "destination is required")
		return
	}
	offers := search.SearchActivities(destination, c.Query("currency"))
	resp := gin.H{"activities": offers}
	if checkin, checkout := c.Query("checkin"), c.Query("checkout"); checkin != "" && checkout != "" {
		travelers, _ := strconv.Atoi(c.Query("travelers"))
		resp["stayLink"] = search.StayDeepLink(destination, checkin, checkout, travelers)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SearchHandler) POI(c *gin.Context) {
	city, ok := poi.Lookup(c.Param("city"))
	if !ok {
		writeError(c, http.StatusNotFound, "unknown city")
		return
	}
	c.JSON(http.StatusOK, city)
}
