package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jobhub104/backend/config"
	_ "github.com/jobhub104/backend/docs"
	"github.com/jobhub104/backend/docsearch"
	"github.com/jobhub104/backend/handlers"
	"github.com/jobhub104/backend/job104"
)

// @title JobHub104 API
// @version 1.0
// @description Aggregates 104.com.tw job listings and offers document keyword and placeholder vector store queries.

// @contact.name API Support
// @contact.email support@jobhub104.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Set Gin mode based on debug setting
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// The OpenAI key is not required by any endpoint; warn on absence only
	if cfg.OpenAIAPIKey == "" {
		log.Println("OPENAI_API_KEY is not set; AI-related features will be unavailable")
	} else {
		log.Println("OPENAI_API_KEY is set")
	}

	// Ensure the upload working directory exists
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory %s: %v", cfg.UploadDir, err)
	}

	// Initialize the 104 API client
	jobClient := job104.NewClient(cfg)

	// Create handlers
	searchHandler := handlers.NewSearchHandler(jobClient)
	documentHandler := handlers.NewDocumentHandler(docsearch.NewMatcher(), cfg.UploadDir)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Register routes
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.HealthCheck)
	router.GET("/search_104", searchHandler.Search104)
	router.POST("/document", documentHandler.Query)
	router.GET("/vectorstore", handlers.VectorStoreQuery)

	// Compatibility aliases kept from the original langserve deployment
	langserve := router.Group("/langserve")
	{
		langserve.GET("/search_104", searchHandler.Search104)
		langserve.POST("/document", documentHandler.Query)
		langserve.GET("/vectorstore", handlers.VectorStoreQuery)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
