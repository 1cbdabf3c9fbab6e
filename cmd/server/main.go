package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/placeready/placeready-backend/internal/ai/gemini"
	"github.com/placeready/placeready-backend/internal/config"
	"github.com/placeready/placeready-backend/internal/generator"
	"github.com/placeready/placeready-backend/internal/handler"
	"github.com/placeready/placeready-backend/internal/logger"
	"github.com/placeready/placeready-backend/internal/router"
	"github.com/placeready/placeready-backend/internal/service"
	"github.com/placeready/placeready-backend/internal/store"
	"github.com/placeready/placeready-backend/internal/validator"
	"github.com/placeready/placeready-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Int("cohort_size", cfg.CohortSize).
		Msg("Starting PlaceReady Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// ─── Build Process-Wide State ──────────────────────────────────────
	// Everything below is generated once and read-only from here on.
	rng := generator.NewRand(cfg.RandomSeed)

	studentStore := store.NewStudentStore(generator.GenerateStudents(rng, cfg.CohortSize))
	questionBank := store.NewQuestionBank(rng, generator.SeedAptitudeQuestions())
	softSkillsBank := store.NewSoftSkillsBank(rng, generator.SeedSoftSkillsQuestions())

	companyStore, err := store.NewCompanyStore(generator.SeedCompanies())
	if err != nil {
		log.Fatal().Err(err).Msg("Company data failed validation")
	}

	log.Info().
		Int("students", studentStore.Len()).
		Int("aptitude_questions", questionBank.Len()).
		Int("soft_skills_questions", softSkillsBank.Len()).
		Int("companies", len(companyStore.List())).
		Msg("Process state generated")

	// ─── Optional Gemini Analyzer ──────────────────────────────────────
	var contentGen service.ContentGenerator
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.New(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize Gemini client")
		}
		contentGen = client
		log.Info().Str("model", client.Model()).Msg("Gemini resume analysis enabled")
	}

	// ─── Initialize Services ──────────────────────────────────────────
	resolver := service.NewFirstStudentResolver(studentStore)
	gradingService := service.NewGradingService(questionBank, log)
	softSkillsService := service.NewSoftSkillsService(softSkillsBank, log)
	resumeService := service.NewResumeService(rng, contentGen, log)
	matchService := service.NewMatchService(companyStore)
	analyticsService := service.NewAnalyticsService(studentStore)

	// ─── Start Analytics Broadcaster ──────────────────────────────────
	broadcaster := worker.NewAnalyticsBroadcaster(analyticsService, cfg.AnalyticsInterval, log)

	workerCtx, workerCancel := context.WithCancel(context.Background())
	go broadcaster.Start(workerCtx)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Student:    handler.NewStudentHandler(studentStore, resolver),
		Aptitude:   handler.NewAptitudeHandler(questionBank, gradingService, cfg.AptitudeSampleSize),
		SoftSkills: handler.NewSoftSkillsHandler(softSkillsBank, softSkillsService, cfg.SoftSkillsSampleSize),
		Resume:     handler.NewResumeHandler(resumeService),
		Company:    handler.NewCompanyHandler(companyStore, matchService, resolver),
		Analytics:  handler.NewAnalyticsHandler(analyticsService),
		WS:         handler.NewWSHandler(broadcaster, log, cfg.AllowedOrigins),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
