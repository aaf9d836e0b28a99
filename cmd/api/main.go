package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/follonierjack89-bit/fte-facturation/internal/application/service"
	"github.com/follonierjack89-bit/fte-facturation/internal/config"
	"github.com/follonierjack89-bit/fte-facturation/internal/infrastructure/database"
	"github.com/follonierjack89-bit/fte-facturation/internal/infrastructure/repository"
	"github.com/follonierjack89-bit/fte-facturation/internal/presentation/http/handler"
	"github.com/follonierjack89-bit/fte-facturation/internal/presentation/http/routes"
	"github.com/follonierjack89-bit/fte-facturation/pkg/pdfgen"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewSQLiteDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize PDF generator
	pdfGenerator, err := pdfgen.NewGenerator(cfg.Storage.InvoiceDir)
	if err != nil {
		log.Fatalf("Failed to initialize PDF output directory: %v", err)
	}

	// Initialize repositories
	clientRepo := repository.NewClientRepository(db)
	itemRepo := repository.NewItemRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Purge expired idempotency keys in the background
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("Warning: Failed to purge expired idempotency keys: %v", err)
			}
		}
	}()

	// Initialize services
	clientService := service.NewClientService(clientRepo)
	itemService := service.NewItemService(itemRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, clientRepo, itemRepo, settingsService, pdfGenerator)

	// Initialize handlers
	handlers := &routes.Handlers{
		Client:   handler.NewClientHandler(clientService),
		Item:     handler.NewItemHandler(itemService),
		Invoice:  handler.NewInvoiceHandler(invoiceService),
		Settings: handler.NewSettingsHandler(settingsService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
