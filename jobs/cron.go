package jobs

import (
	"context"
	"fmt"
	"time"

	"frontdesk/services/logger"
	"frontdesk/services/notification"
	"frontdesk/types"
	"frontdesk/utils"

	"github.com/robfig/cron/v3"
)

// StatusRefresher re-projects room statuses when the day rolls over.
type StatusRefresher interface {
	RefreshStatuses(ctx context.Context) (int, error)
}

type DailyReporter interface {
	DailyReports(ctx context.Context, start, end string) ([]types.DailyReport, error)
}

type Options struct {
	Schedule string
	Rooms    StatusRefresher
	Reports  DailyReporter
	Notifier notification.Service
	Logger   logger.Logger
	Currency string
	// Now defaults to time.Now; the scheduler's location decides when "today" starts.
	Now func() time.Time
}

// InitCronJobs registers the nightly jobs and starts the scheduler.
func InitCronJobs(c *cron.Cron, opts Options) error {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	_, err := c.AddFunc(opts.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		RefreshRoomStatuses(ctx, opts)
		if err := PublishDailySummary(ctx, opts, opts.Now().AddDate(0, 0, -1)); err != nil {
			opts.Logger.Error("daily summary failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", opts.Schedule, err)
	}

	c.Start()
	opts.Logger.Info("cron jobs initialized (%s)", opts.Schedule)
	return nil
}

func RefreshRoomStatuses(ctx context.Context, opts Options) {
	changed, err := opts.Rooms.RefreshStatuses(ctx)
	if err != nil {
		opts.Logger.Error("room status refresh failed: %v", err)
		return
	}
	opts.Logger.Info("room status refresh done, %d rooms changed", changed)
}

// PublishDailySummary pushes the report for day to connected dashboards.
func PublishDailySummary(ctx context.Context, opts Options, day time.Time) error {
	date := utils.FormatDate(utils.DateOf(day))
	reports, err := opts.Reports.DailyReports(ctx, date, date)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		return nil
	}
	msg := notification.NewMessageBuilder(opts.Currency, reports[0]).Build()
	if err := opts.Notifier.SendMessage(msg); err != nil {
		return err
	}
	opts.Logger.Info("daily summary published for %s", date)
	return nil
}
