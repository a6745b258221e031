package models

import (
	"frontdesk/constants"
	apperrors "frontdesk/errors"
)

// BookingState guards which lifecycle moves are legal from a status.
type BookingState interface {
	CheckIn(b *Booking) error
	Checkout(b *Booking) error
	Cancel(b *Booking) error
	Edit(b *Booking) error
}

// UpcomingState is the only initial state.
type UpcomingState struct{}

func (s *UpcomingState) CheckIn(b *Booking) error {
	b.Status = constants.BookingStatusCheckedIn
	return nil
}

func (s *UpcomingState) Checkout(b *Booking) error {
	return apperrors.Conflict("booking has not been checked in")
}

func (s *UpcomingState) Cancel(b *Booking) error {
	b.Status = constants.BookingStatusCancelled
	return nil
}

func (s *UpcomingState) Edit(b *Booking) error { return nil }

type CheckedInState struct{}

func (s *CheckedInState) CheckIn(b *Booking) error {
	return apperrors.Conflict("booking already checked in")
}

func (s *CheckedInState) Checkout(b *Booking) error {
	b.Status = constants.BookingStatusCompleted
	return nil
}

func (s *CheckedInState) Cancel(b *Booking) error {
	return apperrors.Conflict("checked-in booking cannot be cancelled, check the guest out instead")
}

func (s *CheckedInState) Edit(b *Booking) error { return nil }

type CompletedState struct{}

func (s *CompletedState) CheckIn(b *Booking) error {
	return apperrors.Conflict("booking already completed")
}

func (s *CompletedState) Checkout(b *Booking) error {
	return apperrors.Conflict("booking already completed")
}

func (s *CompletedState) Cancel(b *Booking) error {
	return apperrors.Conflict("cannot cancel completed booking")
}

func (s *CompletedState) Edit(b *Booking) error {
	return apperrors.Conflict("cannot edit completed booking")
}

type CancelledState struct{}

func (s *CancelledState) CheckIn(b *Booking) error {
	return apperrors.Conflict("cannot check in cancelled booking")
}

func (s *CancelledState) Checkout(b *Booking) error {
	return apperrors.Conflict("cannot check out cancelled booking")
}

func (s *CancelledState) Cancel(b *Booking) error {
	return apperrors.Conflict("booking already cancelled")
}

func (s *CancelledState) Edit(b *Booking) error {
	return apperrors.Conflict("cannot edit cancelled booking")
}

// unknownState rejects everything so a corrupt status never moves.
type unknownState struct{}

func (s *unknownState) CheckIn(b *Booking) error  { return apperrors.Conflict("unknown booking status") }
func (s *unknownState) Checkout(b *Booking) error { return apperrors.Conflict("unknown booking status") }
func (s *unknownState) Cancel(b *Booking) error   { return apperrors.Conflict("unknown booking status") }
func (s *unknownState) Edit(b *Booking) error     { return apperrors.Conflict("unknown booking status") }

// GetBookingState returns the state for a booking status.
func GetBookingState(status string) BookingState {
	switch status {
	case constants.BookingStatusUpcoming:
		return &UpcomingState{}
	case constants.BookingStatusCheckedIn:
		return &CheckedInState{}
	case constants.BookingStatusCompleted:
		return &CompletedState{}
	case constants.BookingStatusCancelled:
		return &CancelledState{}
	default:
		return &unknownState{}
	}
}
