package types

import (
	"time"

	"frontdesk/models"

	"github.com/shopspring/decimal"
)

// GuestSummary is a read-only projection of every booking sharing one email.
type GuestSummary struct {
	Email            string           `json:"email"`
	Name             string           `json:"name"`
	Phone            string           `json:"phone,omitempty"`
	Country          string           `json:"country,omitempty"`
	TotalBookings    int              `json:"totalBookings"`
	CompletedStays   int              `json:"totalStays"`
	UpcomingBookings int              `json:"upcomingBookings"`
	LastStay         *time.Time       `json:"lastStay,omitempty"`
	TotalSpent       decimal.Decimal  `json:"totalSpent"`
	Bookings         []models.Booking `json:"bookings,omitempty"`
}
