package commands

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"frontdesk/config"
	"frontdesk/jobs"
	"frontdesk/middleware"
	"frontdesk/routes"
	"frontdesk/services/notification"

	"github.com/spf13/cobra"
)

func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the nightly jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, closeLog, err := loadConfig()
			if err != nil {
				return err
			}
			defer closeLog()
			if port, _ := cmd.Flags().GetString("port"); port != "" {
				cfg.Port = port
			}
			autoMigrate, _ := cmd.Flags().GetBool("migrate")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			router, m, c, err := config.InitApp(cfg,
				middleware.RequestID(),
				middleware.RequestLogger(log),
				middleware.Recovery(log),
			)
			if err != nil {
				return err
			}
			notifier := notification.NewMelodyService(m)

			app, err := NewApp(ctx, cfg, log, notifier)
			if err != nil {
				return err
			}
			defer app.Close()

			if autoMigrate {
				if err := config.Migrate(app.DB); err != nil {
					return err
				}
			}

			err = jobs.InitCronJobs(c, jobs.Options{
				Schedule: cfg.StatusRefreshSchedule,
				Rooms:    app.Services.Rooms,
				Reports:  app.Services.Reports,
				Notifier: notifier,
				Logger:   log,
				Currency: cfg.Currency,
				Now:      app.Clock.Now,
			})
			if err != nil {
				return err
			}
			defer c.Stop()

			routes.SetupRoutes(router, app.Services, m)

			srv := &http.Server{Addr: ":" + cfg.Port, Handler: router}
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				_ = m.Close()
				_ = srv.Shutdown(shutdownCtx)
			}()

			log.Info("Server starting on port %s...", cfg.Port)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			log.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().String("port", "", "Port to listen on (overrides PORT)")
	cmd.Flags().Bool("migrate", true, "Run schema migration before serving")
	return cmd
}
