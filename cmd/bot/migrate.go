package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/language-teacher-bot/internal/config"
	"github.com/aliskhannn/language-teacher-bot/internal/infra/postgres"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Manage the database schema",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "status"},
	RunE: func(cmd *cobra.Command, args []string) error {
		direction := "up"
		if len(args) == 1 {
			direction = args[0]
		}

		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		ctx := cmd.Context()
		pool, err := openPool(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer pool.Close()

		switch direction {
		case "down":
			return migrateDown(ctx, pool, log)
		case "status":
			return migrateStatus(ctx, pool, cmd)
		default:
			return migrateUp(ctx, pool, log)
		}
	},
}

func openPool(ctx context.Context, db config.DB) (*pgxpool.Pool, error) {
	dsn, err := db.DSN()
	if err != nil {
		return nil, err
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        db.MaxConnections,
		MaxConnLifetime: db.MaxConnLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return pool, nil
}

func migrateUp(ctx context.Context, pool *pgxpool.Pool, log *zap.Logger) error {
	m, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()

	n, err := m.Up(ctx)
	if err != nil {
		return err
	}
	log.Info("migrations applied", zap.Int("count", n))
	return nil
}

func migrateDown(ctx context.Context, pool *pgxpool.Pool, log *zap.Logger) error {
	m, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()

	if err := m.Down(ctx); err != nil {
		return err
	}
	log.Info("latest migration rolled back")
	return nil
}

func migrateStatus(ctx context.Context, pool *pgxpool.Pool, cmd *cobra.Command) error {
	m, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()

	statuses, err := m.Status(ctx)
	if err != nil {
		return err
	}

	for _, s := range statuses {
		applied := "pending"
		if !s.AppliedAt.IsZero() {
			applied = s.AppliedAt.Format("2006-01-02 15:04:05")
		}
		cmd.Printf("%05d  %-8s  %s\n", s.Source.Version, s.State, applied)
	}
	return nil
}
