package commands

import (
	"context"
	"testing"
	"time"

	"frontdesk/builders"
	"frontdesk/config"
	"frontdesk/models"
	"frontdesk/services"
	"frontdesk/services/logger"
	"frontdesk/services/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

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

func TestSeed(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	today := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	cfg := &config.Config{Currency: "LKR", RoomCharge: "500", UpcomingMax: 10}
	svc := BuildServices(db, services.NoopReportCache{}, &services.FixedClock{At: today},
		notification.Discard{}, logger.NewDiscardLogger(), cfg)

	seeded, err := Seed(ctx, db, svc, today)
	require.NoError(t, err)
	assert.True(t, seeded)

	var rooms, bookings, reservations int64
	require.NoError(t, db.Model(&models.Room{}).Count(&rooms).Error)
	require.NoError(t, db.Model(&models.Booking{}).Count(&bookings).Error)
	require.NoError(t, db.Model(&models.RoomReservation{}).Count(&reservations).Error)
	assert.Equal(t, int64(len(sampleRooms)), rooms)
	assert.Equal(t, int64(3), bookings)
	assert.Equal(t, int64(3), reservations)

	upcoming, err := svc.Bookings.ListUpcoming(ctx)
	require.NoError(t, err)
	require.Len(t, upcoming, 3)
	assert.Equal(t, "2024-03-08", upcoming[0].CheckInDate.Format("2006-01-02"))

	seeded, err = Seed(ctx, db, svc, today)
	require.NoError(t, err)
	assert.False(t, seeded)
	require.NoError(t, db.Model(&models.Room{}).Count(&rooms).Error)
	assert.Equal(t, int64(len(sampleRooms)), rooms)
}

func TestBookingBuilder(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	req := builders.NewBookingBuilder().
		WithGuestInfo("Alice Johnson", "alice@example.com", "123").
		WithIdentity("N1234567", "Sri Lanka").
		WithRoom("101").WithNights(day, 3).WithAmount(13500).WithNotes("late arrival").
		Build()
	assert.Equal(t, "Night Stay", req.StayType)
	assert.Equal(t, "2024-03-01", req.CheckInDate)
	assert.Equal(t, "2024-03-04", req.CheckOutDate)
	assert.Equal(t, "13500", req.BookingAmount.String())
	assert.Equal(t, "Sri Lanka", req.GuestCountry)

	short := builders.NewBookingBuilder().WithRoom("102").WithDates("2024-03-01", "2024-03-02").ShortTime(day).Build()
	assert.Equal(t, "Short Time", short.StayType)
	assert.Empty(t, short.CheckOutDate)
}
