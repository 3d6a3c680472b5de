package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/infrastructure/db/postgres"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/infrastructure/db/postgres/migrations"
)

func migrateCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending Postgres migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN(), MaxConns: 1})
			if err != nil {
				return err
			}
			defer pool.Close()

			n, err := migrations.Run(ctx, pool, log)
			if err != nil {
				return err
			}
			if check {
				if err := migrations.CheckSchema(ctx, pool); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d migration(s) applied\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", true, "verify required tables after migrating")
	return cmd
}
