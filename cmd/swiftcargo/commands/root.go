// Package commands implements the swiftcargo operator CLI.
package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/infrastructure/config"
	"github.com/kevlarmarlon20-eng/SwiftCargo/pkg/logger"
)

var (
	cfg      *config.Config
	log      zerolog.Logger
	logLevel string
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "swiftcargo",
		Short:         "SwiftCargo operator tools",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			cfg = c
			if logLevel == "" {
				logLevel = cfg.LogLevel
			}
			logger.Reset()
			log = logger.Init(logger.Options{Level: logLevel, Pretty: true, Output: os.Stderr})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (default from LOG_LEVEL)")
	root.AddCommand(resolveCmd(), distanceCmd(), migrateCmd())
	return root
}
