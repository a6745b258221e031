package commands

import (
	"frontdesk/config"
	"frontdesk/services/notification"

	"github.com/spf13/cobra"
)

func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, closeLog, err := loadConfig()
			if err != nil {
				return err
			}
			defer closeLog()
			app, err := NewApp(cmd.Context(), cfg, log, notification.Discard{})
			if err != nil {
				return err
			}
			defer app.Close()

			if err := config.Migrate(app.DB); err != nil {
				return err
			}
			log.Info("schema migrated (%s)", cfg.DBDriver)
			return nil
		},
	}
}
