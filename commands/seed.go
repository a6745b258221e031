package commands

import (
	"context"
	"fmt"
	"time"

	"frontdesk/builders"
	"frontdesk/config"
	"frontdesk/dto"
	"frontdesk/models"
	"frontdesk/routes"
	"frontdesk/services/notification"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// Command is one seeding step.
type Command interface {
	Execute(ctx context.Context) error
}

type CreateRoomCommand struct {
	svc routes.Services
	req dto.CreateRoomRequest
}

func NewCreateRoomCommand(svc routes.Services, req dto.CreateRoomRequest) *CreateRoomCommand {
	return &CreateRoomCommand{svc: svc, req: req}
}

func (c *CreateRoomCommand) Execute(ctx context.Context) error {
	_, err := c.svc.Rooms.Create(ctx, c.req)
	return err
}

type CreateBookingCommand struct {
	svc routes.Services
	req dto.CreateBookingRequest
}

func NewCreateBookingCommand(svc routes.Services, req dto.CreateBookingRequest) *CreateBookingCommand {
	return &CreateBookingCommand{svc: svc, req: req}
}

func (c *CreateBookingCommand) Execute(ctx context.Context) error {
	_, err := c.svc.Bookings.Create(ctx, c.req)
	return err
}

func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load sample rooms and bookings into an empty database",
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
			seeded, err := Seed(cmd.Context(), app.DB, app.Services, app.Clock.Today())
			if err != nil {
				return err
			}
			if !seeded {
				log.Info("sample data already exists")
				return nil
			}
			log.Info("sample data loaded")
			return nil
		},
	}
}

// Seed loads sample rooms and bookings unless rooms already exist.
// Bookings start a week after today so they never collide with live stays.
func Seed(ctx context.Context, db *gorm.DB, svc routes.Services, today time.Time) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Room{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	var steps []Command
	for _, r := range sampleRooms {
		steps = append(steps, NewCreateRoomCommand(svc, dto.CreateRoomRequest{
			RoomNumber:    r.number,
			RoomType:      r.roomType,
			PricePerNight: decimal.NewFromInt(r.price),
			MaxOccupancy:  r.occupancy,
			Amenities:     r.amenities,
		}))
	}

	start := today.AddDate(0, 0, 7)
	steps = append(steps,
		NewCreateBookingCommand(svc, builders.NewBookingBuilder().
			WithGuestInfo("Alice Johnson", "alice@example.com", "123-456-7890").
			WithRoom("103").WithNights(start, 4).WithAmount(18000).Build()),
		NewCreateBookingCommand(svc, builders.NewBookingBuilder().
			WithGuestInfo("Bob Smith", "bob@example.com", "098-765-4321").
			WithRoom("201").WithNights(start.AddDate(0, 0, 2), 4).WithAmount(18000).Build()),
		NewCreateBookingCommand(svc, builders.NewBookingBuilder().
			WithGuestInfo("Carol Davis", "carol@example.com", "555-123-4567").
			WithRoom("301").WithNights(start.AddDate(0, 0, 4), 5).WithAmount(22500).Build()),
	)

	for i, step := range steps {
		if err := step.Execute(ctx); err != nil {
			return false, fmt.Errorf("seed step %d: %w", i+1, err)
		}
	}
	return true, nil
}

type sampleRoom struct {
	number    string
	roomType  string
	price     int64
	occupancy int
	amenities []string
}

var sampleRooms = []sampleRoom{
	{"101", "Suite", 9000, 4, []string{"AC", "TV", "Mini Bar", "Balcony"}},
	{"102", "Double", 4500, 2, []string{"AC", "TV"}},
	{"103", "Double", 4500, 2, []string{"AC", "TV"}},
	{"201", "Double", 4500, 2, []string{"AC", "TV"}},
	{"202", "Triple", 6000, 3, []string{"AC", "TV"}},
	{"203", "Double", 4500, 2, []string{"Fan", "TV"}},
	{"204", "Triple", 6000, 3, []string{"AC"}},
	{"205", "Double", 4500, 2, []string{"Fan"}},
	{"301", "Double", 4500, 2, []string{"AC", "TV", "Sea View"}},
	{"302", "Double", 4500, 2, []string{"AC", "TV", "Sea View"}},
}
