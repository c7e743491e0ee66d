package main

import (
	"fmt"
	"log"

	"seosik/internal/classifier/openai"
	"seosik/internal/config"
	"seosik/internal/handler"
	"seosik/internal/pdf"
	"seosik/internal/resolver"
	"seosik/internal/router"
	"seosik/internal/service"
	s3storage "seosik/internal/storage/s3"
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

	// Initialize storage
	remote, err := s3storage.NewS3Client(&cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize pipeline stages
	cls := openai.NewClassifier(&cfg.Classifier)
	res := resolver.New(&cfg.Resolver, cfg.Storage.SharedRoot)
	persister := service.NewResultPersister(remote, cfg.Storage.SharedRoot)
	analyzeSvc := service.NewAnalyzeService(
		pdf.NewTextExtractor(),
		pdf.NewPageSlicer(),
		cls,
		res,
		persister,
	)

	// Initialize handlers
	analyzeH := handler.NewAnalyzeHandler(analyzeSvc)
	remoteH := handler.NewRemoteHandler(remote, cfg.Storage.SharedRoot)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(analyzeH, remoteH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
