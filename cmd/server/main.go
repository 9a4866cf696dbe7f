package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"drishti/internal/config"
	"drishti/internal/engine"
	"drishti/internal/handler"
	"drishti/internal/router"
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

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize engine
	eng := engine.New(engine.Config{PreviewLines: cfg.Engine.PreviewLines})

	// Initialize handlers
	scanH := handler.NewScanHandler(eng)
	exportH := handler.NewExportHandler()
	docsH := handler.NewDocsHandler()
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, scanH, exportH, docsH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
