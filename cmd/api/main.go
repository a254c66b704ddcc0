package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/tubenotes/tubenotes/pkg/validator"

	"github.com/tubenotes/tubenotes/internal/adapter/handler"
	"github.com/tubenotes/tubenotes/internal/adapter/repository"
	"github.com/tubenotes/tubenotes/internal/infrastructure/database"
	"github.com/tubenotes/tubenotes/internal/infrastructure/external/youtube"
	"github.com/tubenotes/tubenotes/internal/usecase/format"
	"github.com/tubenotes/tubenotes/internal/usecase/history"
	"github.com/tubenotes/tubenotes/internal/usecase/template"
	"github.com/tubenotes/tubenotes/internal/usecase/transcript"
	pkgai "github.com/tubenotes/tubenotes/pkg/ai"
	"github.com/tubenotes/tubenotes/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Apply schema migrations unless explicitly disabled.
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; manage schema with sql-migrate in CI/CD")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	templateRepo := repository.NewTemplateRepository(db)
	historyRepo := repository.NewHistoryRepository(db)

	// Initialize caption client
	log.Println("🎬 Initializing caption client...")
	ytClient := youtube.NewClient(&cfg.YouTube)
	transcriptService := transcript.NewService(ytClient, cfg.YouTube.PreferredLang, logger)

	// Initialize generation client and formatting pipeline
	log.Println("🤖 Initializing generation client...")
	geminiClient := pkgai.NewGeminiClient(&cfg.Gemini)
	formatService := format.NewService(templateRepo, geminiClient, cfg.Gemini.ChunkSize, logger)

	templateService := template.NewService(templateRepo, logger)
	historyService := history.NewService(historyRepo, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	transcriptHandler := handler.NewTranscriptHandler(transcriptService, formatService, logger)
	templateHandler := handler.NewTemplateHandler(templateService, logger)
	historyHandler := handler.NewHistoryHandler(historyService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, transcriptHandler, templateHandler, historyHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
