package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/placeready/placeready-backend/internal/config"
	"github.com/placeready/placeready-backend/internal/generator"
	"github.com/placeready/placeready-backend/internal/logger"
	"github.com/placeready/placeready-backend/internal/service"
)

// cohort-report generates a cohort with the configured size and seed and
// prints its analytics summary as JSON. Useful for eyeballing generator
// output without starting the server.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	rng := generator.NewRand(cfg.RandomSeed)
	students := generator.GenerateStudents(rng, cfg.CohortSize)

	summary, err := service.SummarizeCohort(students)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to summarize cohort")
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode summary")
	}

	fmt.Fprintln(os.Stdout, string(out))
}
