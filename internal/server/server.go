package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"classkit/internal/config"
	"classkit/internal/database"
	"classkit/internal/handlers"
	"classkit/internal/logger"
	"classkit/internal/middlewares"
	"classkit/internal/repositories"
	"classkit/internal/routes"
	"classkit/internal/services"
)

func NewServer(log *logger.Logger) *http.Server {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration", "error", err)
	}

	pool, err := database.Connect()
	if err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}
	if err := database.RunMigrations(pool); err != nil {
		log.Fatal("failed to run migrations", "error", err)
	}
	log.Info("database connection pool established")

	// Generation backend. Without a credential every generate call serves
	// the offline demo documents.
	var backend services.TextBackend
	if cfg.GeminiAPIKey != "" {
		gemini, err := services.NewGeminiBackend(cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatal("failed to initialize generation backend", "error", err)
		}
		backend = gemini
		log.Info("generation backend configured")
	} else {
		log.Warn("no generation credential configured, serving demo content")
	}

	// Dependency injection
	projectRepo := repositories.NewProjectRepository(pool)
	generationService := services.NewGenerationService(backend, log)
	projectService := services.NewProjectService(projectRepo, generationService, log)

	authHandler := handlers.NewAuthHandler(cfg)
	projectHandler := handlers.NewProjectHandler(projectService, cfg.BaseURL)
	exportHandler := handlers.NewExportHandler(projectService)
	studentHandler := handlers.NewStudentHandler(projectService)

	if cfg.Env == "prod" || cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(cors.Default())

	resolveAccess := middlewares.Resolve(projectRepo, cfg.SessionSecret)
	routes.RegisterRoutes(router, resolveAccess, authHandler, projectHandler, exportHandler, studentHandler)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
