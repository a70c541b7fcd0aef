// Command migrate applies the embedded goose migrations.
//
// Usage: migrate [up|down|status]   (default: up)
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/tripmatch-backend/internal/app"
	"github.com/heartmarshall/tripmatch-backend/internal/config"
	"github.com/heartmarshall/tripmatch-backend/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	if err := run(command, cfg.Database.DSN, logger); err != nil {
		logger.Error("migrate failed", slog.String("command", command), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(command, dsn string, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		for _, r := range results {
			logger.Info("migration applied", slog.String("source", r.Source.Path), slog.Duration("duration", r.Duration))
		}
	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("goose down: %w", err)
		}
		logger.Info("migration rolled back", slog.String("source", r.Source.Path))
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("goose status: %w", err)
		}
		for _, s := range statuses {
			logger.Info("migration", slog.String("source", s.Source.Path), slog.String("state", string(s.State)))
		}
	default:
		return fmt.Errorf("unknown command %q (want up, down or status)", command)
	}

	return nil
}
