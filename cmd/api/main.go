package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/eximdesk/eximdesk-api/internal/application/service"
	"github.com/eximdesk/eximdesk-api/internal/config"
	"github.com/eximdesk/eximdesk-api/internal/infrastructure/database"
	"github.com/eximdesk/eximdesk-api/internal/infrastructure/repository"
	"github.com/eximdesk/eximdesk-api/internal/presentation/http/handler"
	"github.com/eximdesk/eximdesk-api/internal/presentation/http/routes"
	"github.com/eximdesk/eximdesk-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
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

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	partyRepo := repository.NewPartyRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	subCategoryRepo := repository.NewSubCategoryRepository(db)
	itemRepo := repository.NewItemRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	invoiceItemRepo := repository.NewInvoiceItemRepository(db)
	packingDetailRepo := repository.NewPackingDetailRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	partyService := service.NewPartyService(partyRepo)
	categoryService := service.NewCategoryService(categoryRepo, subCategoryRepo)
	itemService := service.NewItemService(itemRepo, categoryRepo, subCategoryRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, invoiceItemRepo, packingDetailRepo)
	documentService := service.NewDocumentService(invoiceRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Party:    handler.NewPartyHandler(partyService),
		Category: handler.NewCategoryHandler(categoryService),
		Item:     handler.NewItemHandler(itemService),
		Invoice:  handler.NewInvoiceHandler(invoiceService, documentService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
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
