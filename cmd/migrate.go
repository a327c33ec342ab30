package main

import (
	"context"
	"fmt"

	"turnera/internal/infra/db"
	"turnera/internal/pkg/config"
	"turnera/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		migrateSubcommand("up", "Apply all pending migrations", migrations.Up),
		migrateSubcommand("down", "Roll back the most recent migration", migrations.Down),
		migrateSubcommand("status", "Print applied and pending migrations", migrations.Status),
	)
	return cmd
}

func migrateSubcommand(use, short string, run func(context.Context, *pgxpool.Pool) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			pool, cleanup, err := db.Connect(cfg.DB)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer cleanup()

			return run(cmd.Context(), pool)
		},
	}
}
