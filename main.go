package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/hseinsb/estimate-analyzer/client"
	"github.com/hseinsb/estimate-analyzer/config"
	"github.com/hseinsb/estimate-analyzer/handler"
	"github.com/hseinsb/estimate-analyzer/logger"
	"github.com/hseinsb/estimate-analyzer/service"
	"github.com/hseinsb/estimate-analyzer/store"
)

func main() {
	log := logger.GetLogger()
	defer logger.Close()

	cfg, err := config.LoadConfig(os.Getenv("ESTIMATE_CONFIG_FILE"))
	if err != nil {
		log.Fatalw("failed to load configuration", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize persistence
	estimateStore, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalw("failed to open database", "path", cfg.DatabasePath, "error", err)
	}
	defer estimateStore.Close()

	// Initialize spreadsheet sync
	var sheetsClient *client.SheetsClient
	if cfg.SheetsEnabled {
		sheetsClient = client.NewSheetsClient(cfg.WorkbookPath)
	} else {
		log.Infow("spreadsheet sync disabled")
	}

	// Initialize PDF processor and service layer
	pdfProcessor := service.NewPDFProcessor()
	estimateService := service.NewEstimateService(estimateStore, sheetsClient, pdfProcessor)

	// Initialize handler layer
	estimateHandler := handler.NewEstimateHandler(estimateService, cfg.MaxFileSize)
	healthHandler := handler.NewHealthHandler(estimateService)

	// Optional inbox watcher for PDFs dropped on disk
	if cfg.InboxEnabled {
		watcher := service.NewInboxWatcher(cfg.InboxDir, estimateService)
		go func() {
			if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
				log.Errorw("inbox watcher stopped", "error", err)
			}
		}()
	}

	// Setup Gin router
	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxFileSize

	router.GET("/health", healthHandler.Check)

	api := router.Group("/api/v1")
	{
		estimates := api.Group("/estimates")
		{
			estimates.POST("/upload", estimateHandler.Upload)
			estimates.POST("", estimateHandler.CreateManual)
			estimates.GET("", estimateHandler.List)
			estimates.GET("/:id", estimateHandler.Get)
			estimates.PUT("/:id", estimateHandler.Update)
			estimates.DELETE("/:id", estimateHandler.Delete)
		}
	}

	log.Infow("starting estimate analyzer", "port", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalw("failed to start server", "error", err)
	}
}
