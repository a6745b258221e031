package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"frontdesk/services/logger"
	"frontdesk/types"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRooms struct {
	calls int
	err   error
}

func (f *fakeRooms) RefreshStatuses(context.Context) (int, error) {
	f.calls++
	return 2, f.err
}

type fakeReports struct {
	start, end string
	reports    []types.DailyReport
	err        error
}

func (f *fakeReports) DailyReports(_ context.Context, start, end string) ([]types.DailyReport, error) {
	f.start, f.end = start, end
	return f.reports, f.err
}

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) SendMessage(message string) error {
	f.messages = append(f.messages, message)
	return nil
}

func TestPublishDailySummary(t *testing.T) {
	reports := &fakeReports{reports: []types.DailyReport{{
		Date:          "2024-03-01",
		Revenue:       decimal.NewFromInt(5500),
		Refunds:       decimal.NewFromInt(1000),
		Expenses:      decimal.NewFromInt(3000),
		Profit:        decimal.NewFromInt(2500),
		BookingsCount: 2,
	}}}
	notifier := &fakeNotifier{}
	opts := Options{Reports: reports, Notifier: notifier, Logger: logger.NewDiscardLogger(), Currency: "LKR"}

	err := PublishDailySummary(context.Background(), opts, time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", reports.start)
	assert.Equal(t, "2024-03-01", reports.end)
	require.Len(t, notifier.messages, 1)
	assert.Equal(t,
		"Daily summary 2024-03-01: revenue LKR 5,500.00, expenses LKR 3,000.00, profit LKR 2,500.00, refunds LKR 1,000.00 (2 checkouts)",
		notifier.messages[0])
}

func TestPublishDailySummaryPropagatesErrors(t *testing.T) {
	notifier := &fakeNotifier{}
	opts := Options{
		Reports:  &fakeReports{err: errors.New("db down")},
		Notifier: notifier,
		Logger:   logger.NewDiscardLogger(),
	}
	assert.Error(t, PublishDailySummary(context.Background(), opts, time.Now()))
	assert.Empty(t, notifier.messages)
}

func TestRefreshRoomStatuses(t *testing.T) {
	rooms := &fakeRooms{}
	RefreshRoomStatuses(context.Background(), Options{Rooms: rooms, Logger: logger.NewDiscardLogger()})
	assert.Equal(t, 1, rooms.calls)

	failing := &fakeRooms{err: errors.New("locked")}
	RefreshRoomStatuses(context.Background(), Options{Rooms: failing, Logger: logger.NewDiscardLogger()})
	assert.Equal(t, 1, failing.calls)
}

func TestInitCronJobs(t *testing.T) {
	c := cron.New()
	defer c.Stop()
	opts := Options{
		Schedule: "5 0 * * *",
		Rooms:    &fakeRooms{},
		Reports:  &fakeReports{},
		Notifier: &fakeNotifier{},
		Logger:   logger.NewDiscardLogger(),
	}
	require.NoError(t, InitCronJobs(c, opts))
	assert.Len(t, c.Entries(), 1)

	opts.Schedule = "every tuesday"
	assert.Error(t, InitCronJobs(cron.New(), opts))
}
