// README: CLI demo; runs one real itinerary generation and prints the result.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"tripweaver/internal/ai"
	"tripweaver/internal/config"
	"tripweaver/internal/planner"
)

func main() {
	_ = godotenv.Load()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	cfg, _ := config.Load()
	svc := planner.NewService(provider, cfg.Planner)

	prefs := planner.Preferences{
		Destination: "Rome",
		StartDate:   "2025-09-01",
		EndDate:     "2025-09-05",
		Travelers:   2,
		Currency:    "EUR",
		BudgetTotal: 1200,
		Pace:        "moderate",
		Interests:   []string{"history", "food"},
		MustSee:     []string{"Colosseum"},
	}

	res, err := svc.Generate(ctx, prefs)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	fmt.Printf("Provider: %s (fallback=%v)\n", res.Provider, res.Fallback)
	for _, w := range res.Warnings {
		fmt.Printf("Warning: %s\n", w)
	}
	out, _ := json.MarshalIndent(res.Itinerary, "", "  ")
	fmt.Println(string(out))
}
