package validator

import (
	"testing"
	"time"

	"frontdesk/constants"
	"frontdesk/dto"
	"frontdesk/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct(t *testing.T) {
	err := Struct(dto.CreateBookingRequest{
		RoomNumber:  "101",
		CheckInDate: "2024-3-1",
		StayType:    "Weekly",
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
	assert.ElementsMatch(t, []string{"guestName", "checkInDate", "stayType"}, appErr.Fields)

	assert.NoError(t, Struct(dto.CheckoutRequest{PaymentMethod: "Bank Transfer"}))
}

func TestAmounts(t *testing.T) {
	assert.NoError(t, PositiveAmount("amount", decimal.NewFromInt(1)))
	assert.True(t, errors.IsValidation(PositiveAmount("amount", decimal.Zero)))
	assert.True(t, errors.IsValidation(PositiveAmount("amount", decimal.NewFromInt(-1))))

	assert.NoError(t, NonNegativeAmount("advanceAmount", decimal.Zero))
	assert.NoError(t, NonNegativeAmount("advanceAmount", decimal.Decimal{}))
	assert.True(t, errors.IsValidation(NonNegativeAmount("advanceAmount", decimal.NewFromFloat(-0.01))))
}

func TestOccupancy(t *testing.T) {
	for _, n := range []int{1, 5, 10} {
		assert.NoError(t, Occupancy(n))
	}
	for _, n := range []int{-1, 0, 11} {
		assert.True(t, errors.IsValidation(Occupancy(n)), "n=%d", n)
	}
}

func TestStayDates(t *testing.T) {
	in := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	out := in.AddDate(0, 0, 2)
	same := in

	got, err := StayDates(constants.StayTypeNight, in, &out)
	require.NoError(t, err)
	assert.Equal(t, out, got)

	got, err = StayDates(constants.StayTypeShortTime, in, &out)
	require.NoError(t, err)
	assert.Equal(t, in, got)

	_, err = StayDates(constants.StayTypeNight, in, nil)
	assert.True(t, errors.IsValidation(err))
	_, err = StayDates(constants.StayTypeNight, in, &same)
	assert.True(t, errors.IsValidation(err))
	_, err = StayDates("Weekly", in, &out)
	assert.True(t, errors.IsValidation(err))
}

func TestDateAndLookups(t *testing.T) {
	d, err := Date("checkInDate", "2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 29, d.Day())

	_, err = Date("checkInDate", "2023-02-29")
	assert.True(t, errors.IsValidation(err))
	_, err = Date("checkInDate", " ")
	assert.True(t, errors.IsValidation(err))

	assert.NoError(t, PaymentMethod(constants.PaymentMethodCard))
	assert.True(t, errors.IsValidation(PaymentMethod("Cheque")))

	assert.NoError(t, Email(""))
	assert.NoError(t, Email("guest@example.lk"))
	assert.True(t, errors.IsValidation(Email("guest@")))
}
