package models

import (
	"testing"

	"frontdesk/constants"
	apperrors "frontdesk/errors"

	"github.com/stretchr/testify/assert"
)

func TestBookingStateTransitions(t *testing.T) {
	type move func(BookingState, *Booking) error
	checkIn := func(s BookingState, b *Booking) error { return s.CheckIn(b) }
	checkout := func(s BookingState, b *Booking) error { return s.Checkout(b) }
	cancel := func(s BookingState, b *Booking) error { return s.Cancel(b) }
	edit := func(s BookingState, b *Booking) error { return s.Edit(b) }

	tests := []struct {
		name string
		from string
		move move
		to   string
		ok   bool
	}{
		{"upcoming check in", constants.BookingStatusUpcoming, checkIn, constants.BookingStatusCheckedIn, true},
		{"upcoming cancel", constants.BookingStatusUpcoming, cancel, constants.BookingStatusCancelled, true},
		{"upcoming edit", constants.BookingStatusUpcoming, edit, constants.BookingStatusUpcoming, true},
		{"upcoming checkout", constants.BookingStatusUpcoming, checkout, constants.BookingStatusUpcoming, false},
		{"checked in checkout", constants.BookingStatusCheckedIn, checkout, constants.BookingStatusCompleted, true},
		{"checked in edit", constants.BookingStatusCheckedIn, edit, constants.BookingStatusCheckedIn, true},
		{"checked in again", constants.BookingStatusCheckedIn, checkIn, constants.BookingStatusCheckedIn, false},
		{"checked in cancel", constants.BookingStatusCheckedIn, cancel, constants.BookingStatusCheckedIn, false},
		{"completed check in", constants.BookingStatusCompleted, checkIn, constants.BookingStatusCompleted, false},
		{"completed checkout", constants.BookingStatusCompleted, checkout, constants.BookingStatusCompleted, false},
		{"completed cancel", constants.BookingStatusCompleted, cancel, constants.BookingStatusCompleted, false},
		{"completed edit", constants.BookingStatusCompleted, edit, constants.BookingStatusCompleted, false},
		{"cancelled check in", constants.BookingStatusCancelled, checkIn, constants.BookingStatusCancelled, false},
		{"cancelled checkout", constants.BookingStatusCancelled, checkout, constants.BookingStatusCancelled, false},
		{"cancelled cancel", constants.BookingStatusCancelled, cancel, constants.BookingStatusCancelled, false},
		{"cancelled edit", constants.BookingStatusCancelled, edit, constants.BookingStatusCancelled, false},
		{"unknown status", "Pending", checkIn, "Pending", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			err := tt.move(GetBookingState(tt.from), b)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, apperrors.IsConflict(err), "got %v", err)
			}
			assert.Equal(t, tt.to, b.Status)
		})
	}
}
