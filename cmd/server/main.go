// @title resumelens API
// @version 1.0
// @description Deterministic ATS-style resume analysis over uploaded PDF or plain text files.
// @BasePath /api/v1
package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	_ "resumelens/docs"
	"resumelens/internal/config"
	"resumelens/internal/extract"
	"resumelens/internal/handler"
	"resumelens/internal/logger"
	"resumelens/internal/router"
	"resumelens/internal/service"
	"resumelens/internal/storage/temp"
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

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = zlog.Sync() }()

	store, err := temp.NewStore(cfg.Upload.TmpDir, zlog)
	if err != nil {
		return fmt.Errorf("failed to initialize temp storage: %w", err)
	}

	// Initialize services
	extractors := extract.NewFactory()
	resumeSvc := service.NewResumeService(store, extractors, &cfg.Upload, zlog)

	// Initialize handlers
	resumeH := handler.NewResumeHandler(resumeSvc, &cfg.Upload, zlog)
	healthH := handler.NewHealthHandler(store)

	// Setup router
	r := router.Setup(cfg, zlog, resumeH, healthH)

	zlog.Info("server starting", zap.String("addr", cfg.Server.Port))
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
