package services

import (
	"context"
	"testing"

	"frontdesk/constants"
	"frontdesk/dto"
	apperrors "frontdesk/errors"
	"frontdesk/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupGuests(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, GuestName: "Alice Johnson", GuestEmail: "alice@example.com", GuestPhone: "111", Status: constants.BookingStatusCompleted,
			CheckInDate: at("2024-01-10", 0), SettledAmount: amount("6500"), AdvanceAmount: amount("3000")},
		{ID: 2, GuestName: "Alice J.", GuestEmail: " ALICE@example.com ", GuestPhone: "222", Status: constants.BookingStatusUpcoming,
			CheckInDate: at("2024-04-01", 0), AdvanceAmount: decimal.Zero},
		{ID: 3, GuestName: "Alice Johnson", GuestEmail: "alice@example.com", Status: constants.BookingStatusCheckedIn,
			CheckInDate: at("2024-03-01", 0), AdvanceAmount: amount("1000")},
		{ID: 4, GuestName: "Bob Smith", GuestEmail: "bob@example.com", Status: constants.BookingStatusCancelled,
			CheckInDate: at("2024-02-01", 0)},
		{ID: 5, GuestName: "Walk In", Status: constants.BookingStatusCompleted, CheckInDate: at("2024-02-02", 0)},
		{ID: 6, GuestName: "Bob Smith", GuestEmail: "bob@example.com", Status: constants.BookingStatusCompleted,
			CheckInDate: at("2024-01-05", 0), SettledAmount: amount("-1000"), AdvanceAmount: amount("6000")},
	}

	guests := GroupGuests(bookings)
	require.Len(t, guests, 2)

	alice := guests[0]
	assert.Equal(t, "alice@example.com", alice.Email)
	assert.Equal(t, "Alice J.", alice.Name)
	assert.Equal(t, "222", alice.Phone)
	assert.Equal(t, 3, alice.TotalBookings)
	assert.Equal(t, 1, alice.CompletedStays)
	assert.Equal(t, 1, alice.UpcomingBookings)
	assertAmount(t, "9500", alice.TotalSpent)
	require.NotNil(t, alice.LastStay)
	assert.Equal(t, "2024-03-01", alice.LastStay.Format("2006-01-02"))
	require.Len(t, alice.Bookings, 3)
	assert.Equal(t, uint(2), alice.Bookings[0].ID)

	bob := guests[1]
	assert.Equal(t, "Bob Smith", bob.Name)
	assert.Equal(t, 2, bob.TotalBookings)
	assertAmount(t, "5000", bob.TotalSpent)
	require.NotNil(t, bob.LastStay)
	assert.Equal(t, "2024-01-05", bob.LastStay.Format("2006-01-02"))

	assert.Empty(t, GroupGuests(nil))
}

func seedGuests(t *testing.T, h *harness) {
	ctx := context.Background()
	for _, n := range []string{"101", "102", "103"} {
		h.addRoom(t, n)
	}
	req := func(name, email, room, in, out string) dto.CreateBookingRequest {
		return dto.CreateBookingRequest{
			GuestName: name, GuestEmail: email, RoomNumber: room, CheckInDate: in, CheckOutDate: out,
			StayType: constants.StayTypeNight, BookingAmount: amount("4500"),
		}
	}
	for _, r := range []dto.CreateBookingRequest{
		req("Alice Johnson", "alice@example.com", "101", "2024-03-01", "2024-03-02"),
		req("Alice Johnson", "Alice@Example.com", "101", "2024-03-10", "2024-03-11"),
		req("Bob Smith", "bob@example.com", "102", "2024-03-01", "2024-03-02"),
		req("Zoë Fernando", "zoe@example.com", "103", "2024-03-05", "2024-03-06"),
		req("No Email", "", "103", "2024-03-01", "2024-03-02"),
	} {
		_, err := h.bookings.Create(ctx, r)
		require.NoError(t, err)
	}
}

func TestGuestService_ListAndGet(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, at("2024-03-01", 9))
	seedGuests(t, h)

	guests, err := h.guests.List(ctx)
	require.NoError(t, err)
	require.Len(t, guests, 3)
	assert.Equal(t, "Alice Johnson", guests[0].Name)
	assert.Equal(t, 2, guests[0].TotalBookings)
	assert.Equal(t, "Bob Smith", guests[1].Name)
	assert.Equal(t, "Zoë Fernando", guests[2].Name)

	alice, err := h.guests.Get(ctx, "ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, alice.UpcomingBookings)
	assert.Nil(t, alice.LastStay)

	_, err = h.guests.Get(ctx, "nobody@example.com")
	assert.True(t, apperrors.IsNotFound(err))
	_, err = h.guests.Get(ctx, "  ")
	assert.True(t, apperrors.IsValidation(err))
}

func TestGuestService_Search(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, at("2024-03-01", 9))
	seedGuests(t, h)

	names := func(q string) []string {
		found, err := h.guests.Search(ctx, q)
		require.NoError(t, err)
		out := make([]string, 0, len(found))
		for _, g := range found {
			out = append(out, g.Name)
		}
		return out
	}

	assert.Equal(t, []string{"Alice Johnson"}, names("alice"))
	assert.Equal(t, []string{"Alice Johnson"}, names("Alise Johnson"))
	assert.Equal(t, []string{"Zoë Fernando"}, names("zoe"))
	assert.Equal(t, []string{"Bob Smith"}, names("bob@example"))
	assert.Len(t, names(""), 3)
}
