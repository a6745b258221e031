package commands

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/routes"
	"frontdesk/services"
	"frontdesk/services/logger"
	"frontdesk/services/notification"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// App holds the connections and services one process runs with.
type App struct {
	Config   *config.Config
	DB       *gorm.DB
	Redis    *redis.Client
	Logger   *logger.LogrusLogger
	Clock    services.Clock
	Services routes.Services
}

func NewApp(ctx context.Context, cfg *config.Config, log *logger.LogrusLogger, notifier notification.Service) (*App, error) {
	db, err := config.ConnectDB(cfg)
	if err != nil {
		return nil, err
	}

	rdb, err := config.ConnectRedis(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	var cache services.ReportCache = services.NoopReportCache{}
	if rdb != nil {
		cache = services.NewRedisReportCache(rdb, cfg.ReportTTL)
		log.Info("report cache enabled at %s", cfg.RedisAddr)
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	clock := services.NewSystemClock(loc)

	return &App{
		Config:   cfg,
		DB:       db,
		Redis:    rdb,
		Logger:   log,
		Clock:    clock,
		Services: BuildServices(db, cache, clock, notifier, log, cfg),
	}, nil
}

// BuildServices wires the services around one shared clock and room locker.
func BuildServices(db *gorm.DB, cache services.ReportCache, clock services.Clock, notifier notification.Service, log logger.Logger, cfg *config.Config) routes.Services {
	locker := services.NewRoomLocker()
	rooms := services.NewRoomService(services.RoomServiceOptions{
		DB: db, Clock: clock, Locker: locker, Cache: cache, Logger: log,
	})
	ledger := services.NewLedgerService(services.LedgerServiceOptions{
		DB: db, Cache: cache, Logger: log, Currency: cfg.Currency,
	})
	bookings := services.NewBookingService(services.BookingServiceOptions{
		DB:            db,
		Rooms:         rooms,
		Ledger:        ledger,
		Clock:         clock,
		Locker:        locker,
		Cache:         cache,
		Notifier:      notifier,
		Logger:        log,
		Currency:      cfg.Currency,
		DefaultCharge: cfg.DefaultRoomCharge(),
		UpcomingLimit: cfg.UpcomingMax,
	})
	reports := services.NewReportService(services.ReportServiceOptions{
		DB: db, Clock: clock, Cache: cache, Logger: log, Currency: cfg.Currency,
	})

	return routes.Services{
		Rooms:    rooms,
		Bookings: bookings,
		Guests:   services.NewGuestService(db),
		Ledger:   ledger,
		Reports:  reports,
	}
}

func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
