// Command migrate manages the database schema.
//
// Usage:
//
//	migrate [up|down|status]
//
// Requires DATABASE_DSN environment variable to be set. The default command is up.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/topicpolicy-backend/internal/adapter/postgres"
)

func main() {
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var err error
	switch cmd {
	case "up":
		err = postgres.Migrate(ctx, dsn, logger)
	case "down":
		err = postgres.MigrateDown(ctx, dsn, logger)
	case "status":
		err = printStatus(ctx, dsn)
	default:
		fmt.Fprintln(os.Stderr, "Usage: migrate [up|down|status]")
		os.Exit(2)
	}
	if err != nil {
		logger.Error("migrate failed", slog.String("command", cmd), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func printStatus(ctx context.Context, dsn string) error {
	statuses, err := postgres.MigrationStatus(ctx, dsn)
	if err != nil {
		return err
	}
	for _, s := range statuses {
		applied := "pending"
		if !s.AppliedAt.IsZero() {
			applied = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Printf("%05d  %-8s  %s\n", s.Source.Version, s.State, applied)
	}
	return nil
}
