package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSettle(t *testing.T) {
	tests := []struct {
		name       string
		charges    string
		advance    string
		additional string
		discount   string
		balance    string
		refund     bool
	}{
		{"collect remaining", "9000", "3000", "500", "0", "6500", false},
		{"advance exceeds charges", "5000", "6000", "0", "0", "-1000", true},
		{"discount to zero", "4500", "0", "0", "4500", "0", false},
		{"cents", "4500.10", "1000.05", "0.333", "0", "3500.38", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill := Settle(amount(tt.charges), amount(tt.advance), amount(tt.additional), amount(tt.discount))
			assertAmount(t, tt.balance, bill.Balance)
			assert.Equal(t, tt.refund, bill.IsRefund())
		})
	}
}

func TestSettle_OrderOfAdjustmentsDoesNotMatter(t *testing.T) {
	charges, advance := amount("12000"), amount("2500")
	a := Settle(charges, advance, amount("700"), amount("300"))
	b := Settle(charges, advance, decimal.Zero, amount("300"))
	b = Settle(b.Balance.Add(advance), advance, amount("700"), decimal.Zero)
	assert.True(t, a.Balance.Equal(b.Balance))

	again := Settle(charges, advance, amount("700"), amount("300"))
	assert.True(t, a.Balance.Equal(again.Balance))
	assertAmount(t, "12400", a.Gross())
}

func TestRoomCharges(t *testing.T) {
	fallback := amount("500")
	assertAmount(t, "9000", RoomCharges(amount("9000"), fallback))
	assertAmount(t, "500", RoomCharges(decimal.Zero, fallback))
	assertAmount(t, "500", RoomCharges(amount("-10"), fallback))
}
