// README: Entry point; loads config, wires services, starts HTTP server and background janitor.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tripweaver/internal/ai"
	"tripweaver/internal/config"
	httptransport "tripweaver/internal/http"
	"tripweaver/internal/infra"
	"tripweaver/internal/maps"
	"tripweaver/internal/modules/collab"
	"tripweaver/internal/modules/execution"
	"tripweaver/internal/modules/poll"
	"tripweaver/internal/modules/receipt"
	"tripweaver/internal/modules/trip"
	"tripweaver/internal/planner"
	"tripweaver/internal/types"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer provider.Close()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	plannerSvc := planner.NewService(provider, cfg.Planner)

	tripStore := trip.NewStore(dbPool)
	tripSvc := trip.NewService(tripStore)

	pollStore := poll.NewStore(dbPool)
	pollSvc := poll.NewService(pollStore)

	receiptStore := receipt.NewStore(dbPool)
	receiptSvc := receipt.NewService(receiptStore, cfg.Receipts.Dir)

	collabStore := collab.NewStore(dbPool)
	collabSvc := collab.NewService(collabStore)

	executionStore := execution.NewStore(redisClient)
	executionSvc := execution.NewService(executionStore, execution.NewTripStopSource(tripSvc))

	var enricher *maps.PlacesService
	if cfg.Maps.APIKey != "" {
		enricher, err = maps.NewPlacesService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
	}

	deps := httptransport.ServerDeps{
		Planner:     plannerSvc,
		Trips:       tripSvc,
		Polls:       pollSvc,
		Receipts:    receiptSvc,
		Collab:      collabSvc,
		Execution:   executionSvc,
		DemoOwnerID: types.ID(cfg.DemoOwnerID),
	}
	if enricher != nil {
		deps.Enricher = enricher
	}
	router := httptransport.NewRouter(deps)

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go executionSvc.RunJanitor(ctx, 5*time.Minute, 12*time.Hour)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
