// Package main implements a database seeder that creates a demo user with
// known credentials plus a handful of test users, each with fixture tasks.
// Intended for local development only.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver
	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"
	"github.com/phrazzld/tasklist-api/internal/config"
	"github.com/phrazzld/tasklist-api/internal/domain"
	"github.com/phrazzld/tasklist-api/internal/platform/logger"
	"github.com/phrazzld/tasklist-api/internal/platform/postgres"
	"github.com/phrazzld/tasklist-api/internal/store"
)

// fixtureTask is one of the realistic title/description pairs used to fill
// seeded accounts.
type fixtureTask struct {
	title       string
	description string
}

var fixtureTasks = []fixtureTask{
	{"Design homepage UI", "Create a modern and responsive design for the application homepage using Figma."},
	{"Implement authentication", "Setup JWT authentication with login, register, and password reset functionality."},
	{"Fix navigation bug", "Resolve the issue where the mobile menu does not close after clicking a link."},
	{"Optimize database queries", "Analyze and index the database tables to improve query performance for the dashboard."},
	{"Write API documentation", "Document all API endpoints using Swagger/OpenAPI for better developer experience."},
	{"Setup CI/CD pipeline", "Configure GitHub Actions to automatically run tests and deploy to the staging server."},
	{"Conduct user interviews", "Schedule and conduct interviews with 5 potential users to gather feedback on the prototype."},
	{"Refactor legacy code", "Clean up the user controller and move logic to service classes for better maintainability."},
	{"Update dependencies", "Upgrade framework and tooling packages to their latest stable versions."},
	{"Create marketing assets", "Design banners and social media posts for the upcoming product launch."},
	{"Review pull requests", "Review pending code changes from the team and provide constructive feedback."},
	{"Prepare monthly report", "Compile usage statistics and performance metrics for the monthly management meeting."},
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("Error closing database connection", "error", err)
		}
	}()

	if err := postgres.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, bcrypt.DefaultCost, appLogger)
	taskStore := postgres.NewPostgresTaskStore(db, appLogger)

	// Demo user with known credentials and a fixed status mix.
	demoUser, err := seedUser(ctx, userStore, "Demo User", "demo@example.com", "password123")
	if err != nil {
		return err
	}
	counts := map[domain.TaskStatus]int{
		domain.TaskStatusPending:    5,
		domain.TaskStatusInProgress: 3,
		domain.TaskStatusDone:       7,
	}
	for _, status := range domain.TaskStatuses() {
		for i := 0; i < counts[status]; i++ {
			if err := seedTask(ctx, taskStore, demoUser.ID, status); err != nil {
				return err
			}
		}
	}

	// A few extra users with random tasks, so cross-owner isolation is
	// visible in a fresh environment.
	for i := 1; i <= 3; i++ {
		user, err := seedUser(ctx, userStore,
			fmt.Sprintf("Test User %d", i),
			fmt.Sprintf("user%d@example.com", i),
			"password123")
		if err != nil {
			return err
		}

		statuses := domain.TaskStatuses()
		for n := 5 + rand.Intn(11); n > 0; n-- {
			if err := seedTask(ctx, taskStore, user.ID, statuses[rand.Intn(len(statuses))]); err != nil {
				return err
			}
		}
	}

	appLogger.Info("Database seeded successfully",
		"demo_email", "demo@example.com",
		"demo_password", "password123")
	return nil
}

// seedUser creates one user, tolerating reruns against an already seeded
// database.
func seedUser(
	ctx context.Context,
	userStore store.UserStore,
	name, email, password string,
) (*domain.User, error) {
	user, err := domain.NewUser(name, email, password)
	if err != nil {
		return nil, fmt.Errorf("failed to build user %s: %w", email, err)
	}

	if err := userStore.Create(ctx, user); err != nil {
		if store.IsDuplicateError(err) {
			return userStore.GetByEmail(ctx, email)
		}
		return nil, fmt.Errorf("failed to create user %s: %w", email, err)
	}

	return user, nil
}

// seedTask creates one fixture task with timestamps spread over the last
// 30 days.
func seedTask(
	ctx context.Context,
	taskStore store.TaskStore,
	userID uuid.UUID,
	status domain.TaskStatus,
) error {
	fixture := fixtureTasks[rand.Intn(len(fixtureTasks))]

	createdAt := time.Now().UTC().Add(-time.Duration(rand.Intn(30*24)) * time.Hour)
	updatedAt := createdAt.Add(time.Duration(rand.Int63n(int64(time.Since(createdAt)) + 1)))

	task := &domain.Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       fixture.title,
		Description: fixture.description,
		Status:      status,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}

	if err := taskStore.Create(ctx, task); err != nil {
		return fmt.Errorf("failed to create task for user %s: %w", userID, err)
	}
	return nil
}
