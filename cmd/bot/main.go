package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/language-teacher-bot/internal/config"
	"github.com/aliskhannn/language-teacher-bot/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:           "bot",
	Short:         "Telegram bot for learning Russian and Chinese vocabulary",
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// The token may be embedded in Telegram client errors.
		fmt.Fprintln(os.Stderr, "error:", logger.Scrub(err.Error(), os.Getenv("TELEGRAM_API_TOKEN")))
		os.Exit(1)
	}
}

// bootstrap loads the configuration and builds the logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	return cfg, log, nil
}
