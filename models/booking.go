package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Booking struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	Reference        string          `json:"reference" gorm:"uniqueIndex;size:20"`
	GuestName        string          `json:"guestName" gorm:"not null"`
	GuestEmail       string          `json:"guestEmail,omitempty" gorm:"index"`
	GuestPhone       string          `json:"guestPhone,omitempty"`
	GuestIDDocument  string          `json:"guestIdDocument,omitempty"`
	GuestCountry     string          `json:"guestCountry,omitempty"`
	RoomNumber       string          `json:"roomNumber" gorm:"index;size:20;not null"`
	CheckInDate      time.Time       `json:"checkInDate" gorm:"type:date;index;not null"`
	CheckOutDate     time.Time       `json:"checkOutDate" gorm:"type:date;not null"`
	StayType         string          `json:"stayType" gorm:"size:20;not null"`
	BookingAmount    decimal.Decimal `json:"bookingAmount" gorm:"type:numeric(12,2);not null"`
	AdvanceAmount    decimal.Decimal `json:"advanceAmount" gorm:"type:numeric(12,2);not null;default:0"`
	AdditionalAmount decimal.Decimal `json:"additionalAmount" gorm:"type:numeric(12,2);not null;default:0"`
	DiscountAmount   decimal.Decimal `json:"discountAmount" gorm:"type:numeric(12,2);not null;default:0"`
	SettledAmount    decimal.Decimal `json:"settledAmount" gorm:"type:numeric(12,2);not null;default:0"`
	PaymentMethod    string          `json:"paymentMethod,omitempty" gorm:"size:30"`
	AdditionalNotes  string          `json:"additionalNotes,omitempty"`
	Status           string          `json:"status" gorm:"size:20;index;not null"`
	CheckedInAt      *time.Time      `json:"checkedInAt,omitempty"`
	CheckedOutAt     *time.Time      `json:"checkedOutAt,omitempty"`
	CancelledAt      *time.Time      `json:"cancelledAt,omitempty"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate assigns the human-facing booking reference.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Reference == "" {
		id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
		b.Reference = "BK" + id[:10]
	}
	return nil
}

// GuestKey is the lower-cased email that groups bookings into a guest.
func (b *Booking) GuestKey() string {
	return strings.ToLower(strings.TrimSpace(b.GuestEmail))
}
