package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"swiftdoc/internal/auth"
	"swiftdoc/internal/config"
	"swiftdoc/internal/handler"
	"swiftdoc/internal/llm"
	"swiftdoc/internal/middleware"
	"swiftdoc/internal/repository/postgres"
	"swiftdoc/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Token issuing and verification. AUTH_JWKS_URL switches verification to
	// an external identity provider's key set; the default is self-issued
	// HS256 tokens.
	issuer, err := auth.NewTokenIssuer(cfg.AuthSecret, time.Duration(cfg.TokenTTLMins)*time.Minute)
	if err != nil {
		log.Fatalf("Failed to create token issuer: %v", err)
	}

	var verifier auth.TokenVerifier
	if cfg.AuthJWKSURL != "" {
		verifier, err = auth.NewJWKSVerifier(cfg.AuthJWKSURL, logger)
	} else {
		verifier, err = auth.NewHMACVerifier(cfg.AuthSecret, logger)
	}
	if err != nil {
		log.Fatalf("Failed to create token verifier: %v", err)
	}
	defer verifier.Close()

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	// Create table names and bootstrap schema
	tables := postgres.NewTableNames(cfg.TablePrefix)
	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	userRepo := postgres.NewUserRepository(repoConfig)
	projectRepo := postgres.NewProjectRepository(repoConfig)
	sectionRepo := postgres.NewSectionRepository(repoConfig)
	feedbackRepo := postgres.NewFeedbackRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Setup LLM provider
	provider, err := llm.NewProvider(cfg)
	if err != nil {
		log.Fatalf("Failed to setup LLM provider: %v", err)
	}
	logger.Info("llm provider initialized", "provider", provider.Name(), "model", cfg.DefaultModel)

	// Create services
	authService := service.NewAuthService(userRepo, issuer, logger)
	projectService := service.NewProjectService(projectRepo, sectionRepo, feedbackRepo, txManager, logger)
	sectionService := service.NewSectionService(sectionRepo, projectRepo, feedbackRepo, provider, logger)
	outlineService := service.NewOutlineService(provider, logger)
	exportService := service.NewExportService(projectRepo, sectionRepo, logger)

	// Create handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	projectHandler := handler.NewProjectHandler(projectService, logger)
	sectionHandler := handler.NewSectionHandler(sectionService, logger)
	outlineHandler := handler.NewOutlineHandler(outlineService, logger)
	exportHandler := handler.NewExportHandler(exportService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", projectHandler.HealthCheck)

	// Auth routes (exempt from the auth middleware)
	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)

	// Project routes
	mux.HandleFunc("GET /api/projects", projectHandler.ListProjects)
	mux.HandleFunc("POST /api/projects", projectHandler.CreateProject)
	mux.HandleFunc("GET /api/projects/{id}", projectHandler.GetProject)
	mux.HandleFunc("DELETE /api/projects/{id}", projectHandler.DeleteProject)
	mux.HandleFunc("GET /api/projects/{id}/export", exportHandler.Export)

	// Outline suggestion
	mux.HandleFunc("POST /api/outline/suggest", outlineHandler.Suggest)

	// Section routes
	mux.HandleFunc("POST /api/sections/{id}/generate", sectionHandler.Generate)
	mux.HandleFunc("POST /api/sections/{id}/refine", sectionHandler.Refine)
	mux.HandleFunc("POST /api/sections/{id}/feedback", sectionHandler.SubmitFeedback)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	root = middleware.Auth(verifier)(root)
	root = middleware.Recovery(logger)(root)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // generation calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
