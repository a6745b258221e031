package services

import (
	"context"
	"testing"
	"time"

	"frontdesk/config"
	"frontdesk/dto"
	"frontdesk/models"
	"frontdesk/services/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type harness struct {
	db       *gorm.DB
	clock    *FixedClock
	rooms    *RoomService
	bookings *BookingService
	ledger   *LedgerService
	reports  *ReportService
	guests   *GuestService
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return db
}

func newHarness(t *testing.T, now time.Time) *harness {
	return newHarnessWithCache(t, now, NoopReportCache{})
}

func newHarnessWithCache(t *testing.T, now time.Time, cache ReportCache) *harness {
	db := setupTestDB(t)
	clock := &FixedClock{At: now}
	log := logger.NewDiscardLogger()
	locker := NewRoomLocker()

	rooms := NewRoomService(RoomServiceOptions{DB: db, Clock: clock, Locker: locker, Cache: cache, Logger: log})
	ledger := NewLedgerService(LedgerServiceOptions{DB: db, Cache: cache, Logger: log, Currency: "LKR"})
	bookings := NewBookingService(BookingServiceOptions{
		DB:            db,
		Rooms:         rooms,
		Ledger:        ledger,
		Clock:         clock,
		Locker:        locker,
		Cache:         cache,
		Logger:        log,
		Currency:      "LKR",
		DefaultCharge: decimal.NewFromInt(500),
		UpcomingLimit: 10,
	})
	reports := NewReportService(ReportServiceOptions{DB: db, Clock: clock, Cache: cache, Logger: log, Currency: "LKR"})

	return &harness{
		db:       db,
		clock:    clock,
		rooms:    rooms,
		bookings: bookings,
		ledger:   ledger,
		reports:  reports,
		guests:   NewGuestService(db),
	}
}

func (h *harness) addRoom(t *testing.T, number string) *models.Room {
	room, err := h.rooms.Create(context.Background(), dto.CreateRoomRequest{
		RoomNumber:    number,
		RoomType:      "Double",
		PricePerNight: decimal.NewFromInt(4500),
		MaxOccupancy:  2,
		Amenities:     []string{"AC", "TV"},
	})
	require.NoError(t, err)
	return room
}

func (h *harness) book(t *testing.T, guest, room, checkIn, checkOut string, amount int64) *models.Booking {
	b, err := h.bookings.Create(context.Background(), dto.CreateBookingRequest{
		GuestName:     guest,
		GuestEmail:    emailFor(guest),
		RoomNumber:    room,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		StayType:      "Night Stay",
		BookingAmount: decimal.NewFromInt(amount),
	})
	require.NoError(t, err)
	return b
}

func (h *harness) roomByNumber(t *testing.T, number string) *models.Room {
	room, err := h.rooms.GetByNumber(context.Background(), number)
	require.NoError(t, err)
	return room
}

func emailFor(guest string) string {
	out := make([]rune, 0, len(guest))
	for _, r := range guest {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			out = append(out, r)
		}
	}
	return string(out) + "@example.com"
}

func at(date string, hour int) time.Time {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return d.Add(time.Duration(hour) * time.Hour)
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAmount(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, amount(want).Equal(got), append([]interface{}{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}
