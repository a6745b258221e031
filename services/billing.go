package services

import (
	"frontdesk/utils"

	"github.com/shopspring/decimal"
)

// Settlement is the checkout bill. Balance is signed: positive is collected from the
// guest, negative is refunded to the guest.
type Settlement struct {
	RoomCharges decimal.Decimal `json:"roomCharges"`
	Advance     decimal.Decimal `json:"advanceAmount"`
	Additional  decimal.Decimal `json:"additionalAmount"`
	Discount    decimal.Decimal `json:"discountAmount"`
	Balance     decimal.Decimal `json:"balance"`
}

// Settle computes roomCharges + additional - advance - discount without clamping.
func Settle(roomCharges, advance, additional, discount decimal.Decimal) Settlement {
	balance := roomCharges.Add(additional).Sub(advance).Sub(discount)
	return Settlement{
		RoomCharges: utils.Cents(roomCharges),
		Advance:     utils.Cents(advance),
		Additional:  utils.Cents(additional),
		Discount:    utils.Cents(discount),
		Balance:     utils.Cents(balance),
	}
}

// RoomCharges is the agreed booking amount, or fallback when none was agreed.
func RoomCharges(bookingAmount, fallback decimal.Decimal) decimal.Decimal {
	if bookingAmount.IsPositive() {
		return bookingAmount
	}
	return fallback
}

// Gross is what the stay cost before the advance is taken off.
func (s Settlement) Gross() decimal.Decimal {
	return s.RoomCharges.Add(s.Additional).Sub(s.Discount)
}

func (s Settlement) IsRefund() bool {
	return s.Balance.IsNegative()
}
