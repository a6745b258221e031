package commands

import (
	"fmt"
	"time"

	"frontdesk/config"
	"frontdesk/services/logger"

	"github.com/spf13/cobra"
)

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "frontdesk",
		Short:         "Hotel front-desk service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		ServeCmd(),
		MigrateCmd(),
		SeedCmd(),
	)
	return rootCmd
}

// loadConfig reads the environment and builds the logger. The returned func
// closes the log file, if any, and must run before the command returns.
func loadConfig() (*config.Config, *logger.LogrusLogger, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	log := logger.NewLogrusLogger(cfg.LogLevel)
	if cfg.LogDir == "" {
		return cfg, log, func() {}, nil
	}
	logFile, err := log.WriteToDir(cfg.LogDir, time.Now())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open log file: %w", err)
	}
	closeLog := func() {
		if err := logFile.Close(); err != nil {
			log.Warn("close log file: %v", err)
		}
	}
	return cfg, log, closeLog, nil
}
