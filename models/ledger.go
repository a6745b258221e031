package models

import (
	"time"

	"frontdesk/constants"

	"github.com/shopspring/decimal"
)

type Expense struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Description string          `json:"description" gorm:"not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:numeric(12,2);not null"`
	Category    string          `json:"category" gorm:"size:50;index;not null"`
	ExpenseDate time.Time       `json:"expenseDate" gorm:"type:date;index;not null"`
	CreatedBy   string          `json:"createdBy" gorm:"size:50"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
}

// Income is manual, non-room revenue.
type Income struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Description string          `json:"description" gorm:"not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:numeric(12,2);not null"`
	Category    string          `json:"category" gorm:"size:50;index;not null"`
	IncomeDate  time.Time       `json:"incomeDate" gorm:"type:date;index;not null"`
	CreatedBy   string          `json:"createdBy" gorm:"size:50"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
}

// DailySale is the room-sale entry materialised from a checkout. Amount is always
// non-negative; Kind says whether it was collected from or refunded to the guest.
type DailySale struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	BookingID     uint            `json:"bookingId" gorm:"uniqueIndex;not null"`
	SaleDate      time.Time       `json:"date" gorm:"type:date;index;not null"`
	GuestName     string          `json:"guestName" gorm:"not null"`
	RoomNumber    string          `json:"roomNumber" gorm:"size:20;not null"`
	PaymentMethod string          `json:"paymentMethod" gorm:"size:30;not null"`
	Kind          string          `json:"kind" gorm:"size:20;not null"`
	Amount        decimal.Decimal `json:"totalAmount" gorm:"type:numeric(12,2);not null"`
	GrossAmount   decimal.Decimal `json:"grossAmount" gorm:"type:numeric(12,2);not null"`
	AdvanceAmount decimal.Decimal `json:"advanceAmount" gorm:"type:numeric(12,2);not null"`
	RecordedAt    time.Time       `json:"recordedAt" gorm:"not null"`
}

// Net is the signed amount: positive when collected, negative when refunded.
func (s *DailySale) Net() decimal.Decimal {
	if s.Kind == constants.SaleKindRefund {
		return s.Amount.Neg()
	}
	return s.Amount
}

func (s *DailySale) IsRefund() bool {
	return s.Kind == constants.SaleKindRefund
}
