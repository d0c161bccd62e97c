// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tripweaver/internal/http/handlers"
	"tripweaver/internal/http/middleware"
	"tripweaver/internal/modules/collab"
	"tripweaver/internal/modules/execution"
	"tripweaver/internal/modules/poll"
	"tripweaver/internal/modules/receipt"
	"tripweaver/internal/modules/trip"
	"tripweaver/internal/types"
)

type ServerDeps struct {
	Planner   handlers.Planner
	Enricher  handlers.Enricher
	Trips     *trip.Service
	Polls     *poll.Service
	Receipts  *receipt.Service
	Collab    *collab.Service
	Execution *execution.Service
	// DemoOwnerID is the trip owner used while auth is out of scope.
	DemoOwnerID types.ID
}

func NewRouter(deps ServerDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery(), cors.Default())

	itineraryHandler := handlers.NewItineraryHandler(deps.Planner, deps.Enricher)
	tripHandler := handlers.NewTripHandler(deps.Trips, deps.DemoOwnerID)
	pollHandler := handlers.NewPollHandler(deps.Polls)
	receiptHandler := handlers.NewReceiptHandler(deps.Receipts)
	collabHandler := handlers.NewCollabHandler(deps.Collab)
	executionHandler := handlers.NewExecutionHandler(deps.Execution)
	searchHandler := handlers.NewSearchHandler()

	api := r.Group("/api")

	api.POST("/itinerary", itineraryHandler.Generate)

	api.POST("/trips", tripHandler.Create)
	api.GET("/trips", tripHandler.List)
	api.GET("/trips/:id", tripHandler.Get)
	api.DELETE("/trips/:id", tripHandler.Delete)
	api.POST("/trips/:id/duplicate", tripHandler.Duplicate)
	api.GET("/trips/public/:shareToken", tripHandler.GetPublic)

	api.POST("/polls", pollHandler.Create)
	api.GET("/polls/:id", pollHandler.Results)
	api.POST("/polls/:id/vote", pollHandler.Vote)

	api.POST("/trips/:id/receipts", receiptHandler.Upload)
	api.GET("/trips/:id/receipts", receiptHandler.List)

	api.GET("/collaboration/trips/:tripId/messages", collabHandler.List)
	api.POST("/collaboration/trips/:tripId/messages", collabHandler.Post)

	api.POST("/execution/start", executionHandler.Start)
	api.POST("/execution/stop", executionHandler.Stop)
	api.POST("/execution/update-location", executionHandler.UpdateLocation)
	api.GET("/execution/status", executionHandler.Status)

	api.GET("/flights", searchHandler.Flights)
	api.GET("/activities", searchHandler.Activities)
	api.GET("/poi/:city", searchHandler.POI)

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
