package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"rentello/internal/config"
	"rentello/internal/handler"
	"rentello/internal/pipeline"
	"rentello/internal/repository"
	"rentello/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Print version info
	log.Printf("Rentello Rent Prediction Backend")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Load the regression pipeline artifact (non-fatal when missing)
	var pipe *pipeline.Pipeline
	if pipe, err = pipeline.Load(cfg.Model.ArtifactPath); err != nil {
		pipe = nil
		log.Printf("⚠️  Model not loaded: %v", err)
		log.Println("   /predict will return an error for every request")
	} else {
		log.Printf("✅ Model artifact loaded from %s (%d features)", cfg.Model.ArtifactPath, pipe.NumFeatures())
	}

	// Initialize optional request-history store
	var repo *repository.PostgresRepository
	if cfg.PostgreSQL.Enabled {
		repo, err = repository.NewPostgresRepository(
			cfg.GetPostgreSQLDSN(),
			cfg.PostgreSQL.MaxConnections,
			cfg.PostgreSQL.MaxIdleConnections,
		)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer repo.Close()
		log.Println("✅ Connected to PostgreSQL history store")
	} else {
		log.Println("⚠️  No database configured - request history is disabled")
	}

	// Initialize Groq client
	groqClient := service.NewGroqClient(&cfg.Groq)
	if cfg.Groq.Enabled {
		log.Printf("✅ Groq client initialized")
		log.Printf("   - API URL: %s", cfg.Groq.APIURL)
		log.Printf("   - Model: %s", cfg.Groq.Model)
		log.Printf("   - Timeout: %ds", cfg.Groq.Timeout)
	} else {
		log.Println("⚠️  Groq is disabled - /suggest will serve static fallback suggestions")
		log.Println("   Set GROQ_API_KEY environment variable to enable live suggestions")
	}

	// Initialize services
	predictService := service.NewPredictService(pipe)
	suggestService := service.NewSuggestService(groqClient)

	log.Println("✅ Services initialized")

	// Initialize handlers
	predictHandler := handler.NewPredictHandler(predictService, repo)
	suggestHandler := handler.NewSuggestHandler(suggestService, repo)
	historyHandler := handler.NewHistoryHandler(repo, 20, 100)
	pagesHandler := handler.NewPagesHandler(cfg.Server.TemplateGlob)

	// Setup Gin router
	router := gin.Default()
	if pagesHandler.HasTemplates() {
		router.LoadHTMLGlob(cfg.Server.TemplateGlob)
	}

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "rentello-backend",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
			"model":      predictService.IsAvailable(),
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Pages
	router.GET("/", pagesHandler.Home)
	router.GET("/dashboard", pagesHandler.Dashboard)

	// Core endpoints
	router.POST("/predict", predictHandler.Predict)
	router.POST("/suggest", suggestHandler.Suggest)

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/history", historyHandler.Recent)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}
