package main

import (
	"fmt"
	"log"

	"resumeiq/internal/classifier"
	"resumeiq/internal/config"
	"resumeiq/internal/extractor"
	"resumeiq/internal/handler"
	"resumeiq/internal/insight/gemini"
	"resumeiq/internal/port"
	"resumeiq/internal/repository/postgres"
	"resumeiq/internal/router"
	"resumeiq/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The classifier bundle is all-or-nothing: a load failure disables the
	// ML prediction path only, never the whole process.
	bundle, err := classifier.Load(cfg.Classifier.ArtifactDir)
	if err != nil {
		log.Printf("classifier bundle unavailable, ML predictions disabled: %v", err)
	}

	// Analysis history is best-effort: an unreachable database leaves the
	// history endpoints unavailable while everything else keeps serving.
	var historyRepo port.AnalysisRepository
	if cfg.History.Enabled {
		db, err := postgres.NewDB(&cfg.DB)
		if err != nil {
			log.Printf("analysis history unavailable: %v", err)
		} else {
			defer db.Close()
			historyRepo = postgres.NewAnalysisRepo(db)
		}
	}

	generator := gemini.NewClient(&cfg.Gemini)
	if cfg.Gemini.APIKey == "" {
		log.Printf("no Gemini API key configured; LLM-backed analyses will degrade to defaults")
	}

	analysisSvc := service.NewAnalysisService(extractor.New(), bundle, generator, historyRepo, cfg.Limits)
	chatSvc := service.NewChatService(generator)
	historySvc := service.NewHistoryService(historyRepo)

	analysisH := handler.NewAnalysisHandler(analysisSvc)
	chatH := handler.NewChatHandler(chatSvc)
	historyH := handler.NewHistoryHandler(historySvc)
	healthH := handler.NewHealthHandler()

	r := router.Setup(analysisH, chatH, historyH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
