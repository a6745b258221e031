package services

import (
	"context"
	"testing"

	"frontdesk/constants"
	"frontdesk/dto"
	apperrors "frontdesk/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerService_Expenses(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, at("2024-03-01", 9))

	first, err := h.ledger.RecordExpense(ctx, dto.CreateExpenseRequest{
		Description: "Electricity bill", Amount: amount("12500.456"), Category: "Utilities", Date: "2024-03-02",
	})
	require.NoError(t, err)
	assertAmount(t, "12500.46", first.Amount)
	assert.Equal(t, constants.DefaultCreatedBy, first.CreatedBy)

	_, err = h.ledger.RecordExpense(ctx, dto.CreateExpenseRequest{
		Description: "Detergent", Amount: amount("800"), Category: "Supplies", Date: "2024-03-05", CreatedBy: "Nadee",
	})
	require.NoError(t, err)
	_, err = h.ledger.RecordExpense(ctx, dto.CreateExpenseRequest{
		Description: "Water bill", Amount: amount("3000"), Category: "Utilities", Date: "2024-04-01",
	})
	require.NoError(t, err)

	all, err := h.ledger.ListExpenses(ctx, dto.LedgerFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Water bill", all[0].Description)

	march, err := h.ledger.ListExpenses(ctx, dto.LedgerFilter{DateRange: dto.DateRange{StartDate: "2024-03-01", EndDate: "2024-03-31"}})
	require.NoError(t, err)
	assert.Len(t, march, 2)

	utilities, err := h.ledger.ListExpenses(ctx, dto.LedgerFilter{Category: "Utilities"})
	require.NoError(t, err)
	assert.Len(t, utilities, 2)

	require.NoError(t, h.ledger.DeleteExpense(ctx, first.ID))
	assert.True(t, apperrors.IsNotFound(h.ledger.DeleteExpense(ctx, first.ID)))

	all, err = h.ledger.ListExpenses(ctx, dto.LedgerFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestLedgerService_ExpenseValidation(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, at("2024-03-01", 9))

	tests := []struct {
		name string
		req  dto.CreateExpenseRequest
	}{
		{"zero amount", dto.CreateExpenseRequest{Description: "x", Amount: amount("0"), Category: "Misc", Date: "2024-03-01"}},
		{"negative amount", dto.CreateExpenseRequest{Description: "x", Amount: amount("-5"), Category: "Misc", Date: "2024-03-01"}},
		{"missing description", dto.CreateExpenseRequest{Amount: amount("5"), Category: "Misc", Date: "2024-03-01"}},
		{"missing category", dto.CreateExpenseRequest{Description: "x", Amount: amount("5"), Date: "2024-03-01"}},
		{"bad date", dto.CreateExpenseRequest{Description: "x", Amount: amount("5"), Category: "Misc", Date: "2024-13-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.ledger.RecordExpense(ctx, tt.req)
			assert.True(t, apperrors.IsValidation(err), "got %v", err)
		})
	}
}

func TestLedgerService_Incomes(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, at("2024-03-01", 9))

	income, err := h.ledger.RecordIncome(ctx, dto.CreateIncomeRequest{
		Description: "Laundry service", Amount: amount("1200"), Category: "Laundry", Date: "2024-03-03", CreatedBy: "  ",
	})
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultCreatedBy, income.CreatedBy)
	assert.Equal(t, "2024-03-03", income.IncomeDate.Format("2006-01-02"))

	_, err = h.ledger.RecordIncome(ctx, dto.CreateIncomeRequest{Description: "x", Amount: amount("0"), Category: "Misc", Date: "2024-03-01"})
	assert.True(t, apperrors.IsValidation(err))

	listed, err := h.ledger.ListIncomes(ctx, dto.LedgerFilter{Category: "Laundry"})
	require.NoError(t, err)
	require.Len(t, listed, 1)

	require.NoError(t, h.ledger.DeleteIncome(ctx, income.ID))
	assert.True(t, apperrors.IsNotFound(h.ledger.DeleteIncome(ctx, income.ID)))
}

func TestLedgerService_RangeValidation(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, at("2024-03-01", 9))

	_, err := h.ledger.ListExpenses(ctx, dto.LedgerFilter{DateRange: dto.DateRange{StartDate: "2024-03-10", EndDate: "2024-03-01"}})
	assert.True(t, apperrors.IsValidation(err))

	_, err = h.ledger.ListRoomSales(ctx, dto.DateRange{StartDate: "yesterday"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestLedgerService_RoomSalesFromCheckouts(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, at("2024-03-01", 9))
	h.addRoom(t, "101")
	h.addRoom(t, "102")

	a := h.book(t, "Guest A", "101", "2024-03-01", "2024-03-02", 4500)
	b := h.book(t, "Guest B", "102", "2024-03-01", "2024-03-02", 4500)
	_, err := h.bookings.CheckIn(ctx, a.ID, dto.CheckInRequest{AdvanceAmount: amount("1000")})
	require.NoError(t, err)
	_, err = h.bookings.CheckIn(ctx, b.ID, dto.CheckInRequest{AdvanceAmount: amount("5500")})
	require.NoError(t, err)

	h.clock.At = at("2024-03-02", 10)
	_, err = h.bookings.Checkout(ctx, a.ID, dto.CheckoutRequest{PaymentMethod: constants.PaymentMethodCard, DiscountAmount: amount("500")})
	require.NoError(t, err)
	_, err = h.bookings.Checkout(ctx, b.ID, dto.CheckoutRequest{PaymentMethod: constants.PaymentMethodBankTransfer})
	require.NoError(t, err)

	sales, err := h.ledger.ListRoomSales(ctx, dto.DateRange{StartDate: "2024-03-02", EndDate: "2024-03-02"})
	require.NoError(t, err)
	require.Len(t, sales, 2)

	byBooking := map[uint]int{sales[0].BookingID: 0, sales[1].BookingID: 1}
	collected := sales[byBooking[a.ID]]
	assert.Equal(t, constants.SaleKindCollection, collected.Kind)
	assertAmount(t, "3000", collected.Amount)
	assertAmount(t, "4000", collected.GrossAmount)
	assertAmount(t, "1000", collected.AdvanceAmount)
	assert.Equal(t, constants.PaymentMethodCard, collected.PaymentMethod)

	refunded := sales[byBooking[b.ID]]
	assert.Equal(t, constants.SaleKindRefund, refunded.Kind)
	assertAmount(t, "1000", refunded.Amount)
	assertAmount(t, "-1000", refunded.Net())

	none, err := h.ledger.ListRoomSales(ctx, dto.DateRange{StartDate: "2024-03-03"})
	require.NoError(t, err)
	assert.Empty(t, none)
}
