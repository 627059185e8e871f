package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"swiftdoc/internal/auth"
	"swiftdoc/internal/config"
	"swiftdoc/internal/domain"
	"swiftdoc/internal/domain/repositories"
	"swiftdoc/internal/domain/services"
	"swiftdoc/internal/repository/postgres"
	"swiftdoc/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

const (
	demoEmail    = "demo@swiftdoc.local"
	demoPassword = "swiftdoc-demo"
)

func main() {
	// Parse command-line flags
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed demo data")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("🚫 BLOCKED: Cannot run --drop-tables in production environment")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if *schemaOnly {
		log.Printf("🏗️  Setting up schema only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	} else {
		log.Printf("🌱 Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	}

	// Create database connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Drop tables if requested
	if *dropTables {
		log.Println("🗑️  Dropping all tables...")
		if err := dropAllTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("✅ Tables dropped")
	}

	// Run schema to ensure tables exist
	log.Println("📋 Ensuring database schema is up to date...")
	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("✅ Schema ready")

	if *schemaOnly {
		log.Println("✅ Schema setup complete (schema-only mode)")
		return
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

	projectService := service.NewProjectService(projectRepo, sectionRepo, feedbackRepo, txManager, logger)

	// Ensure the demo account exists
	user, err := ensureDemoUser(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to ensure demo user: %v", err)
	}
	log.Printf("👤 Demo user ready: %s (password: %s)", user.Email, demoPassword)

	// Seed demo projects unless the account already has some
	existing, err := projectService.ListProjects(ctx, user.ID)
	if err != nil {
		log.Fatalf("Failed to list projects: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("✅ Demo account already has %d project(s), nothing to seed", len(existing))
		return
	}

	log.Println("📝 Seeding demo projects...")
	for _, req := range demoProjects(user.ID) {
		project, err := projectService.CreateProject(ctx, req)
		if err != nil {
			log.Fatalf("Failed to create project %q: %v", req.Title, err)
		}
		log.Printf("   created %s (%s, %d sections)", project.Title, project.DocType, len(req.Outline))
	}
	log.Println("✅ Seeding complete")
}

// ensureDemoUser creates the demo account, or fetches it if a previous run
// already did.
func ensureDemoUser(ctx context.Context, userRepo repositories.UserRepository) (*domain.User, error) {
	hash, err := auth.HashPassword(demoPassword)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        demoEmail,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	err = userRepo.Create(ctx, user)
	if err == nil {
		return user, nil
	}
	if errors.Is(err, domain.ErrConflict) {
		return userRepo.GetByEmail(ctx, demoEmail)
	}
	return nil, err
}

func demoProjects(userID string) []*services.CreateProjectRequest {
	return []*services.CreateProjectRequest{
		{
			UserID:  userID,
			Title:   "Remote Work Handbook",
			DocType: string(domain.DocTypeWord),
			Topic:   "Best practices for distributed engineering teams",
			Outline: []string{
				"Introduction",
				"Communication Norms",
				"Meeting Hygiene",
				"Tools and Infrastructure",
				"Conclusion",
			},
		},
		{
			UserID:  userID,
			Title:   "Q3 Product Review",
			DocType: string(domain.DocTypePowerPoint),
			Topic:   "Quarterly product metrics and roadmap for a SaaS analytics platform",
			Outline: []string{
				"Highlights",
				"Key Metrics",
				"Roadmap",
			},
		},
	}
}

// dropAllTables drops the prefixed tables in reverse dependency order.
func dropAllTables(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	order := []string{tables.Feedback, tables.Sections, tables.Projects, tables.Users}
	for _, table := range order {
		if _, err := pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)); err != nil {
			return fmt.Errorf("drop table %s: %w", table, err)
		}
	}
	return nil
}
