package models

import (
	"time"

	"frontdesk/constants"
)

// RoomReservation is one entry of a room's interval index: the nights [FromDate, ToDate)
// held by an active booking. Rows are removed once the booking completes or is cancelled.
type RoomReservation struct {
	ID           uint      `gorm:"primaryKey"`
	RoomID       uint      `gorm:"index;not null"`
	RoomNumber   string    `gorm:"index;size:20;not null"`
	BookingID    uint      `gorm:"uniqueIndex;not null"`
	GuestName    string    `gorm:"not null"`
	FromDate     time.Time `gorm:"type:date;index;not null"`
	ToDate       time.Time `gorm:"type:date;index;not null"`
	CheckOutDate time.Time `gorm:"type:date;not null"`
	State        string    `gorm:"size:20;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Overlaps reports whether the reservation shares a night with [from, to).
func (r *RoomReservation) Overlaps(from, to time.Time) bool {
	return r.FromDate.Before(to) && from.Before(r.ToDate)
}

// ReservationSpan returns the nights a stay holds. A Short Time stay holds its single day.
func ReservationSpan(stayType string, checkIn, checkOut time.Time) (time.Time, time.Time) {
	if stayType == constants.StayTypeShortTime || !checkOut.After(checkIn) {
		return checkIn, checkIn.AddDate(0, 0, 1)
	}
	return checkIn, checkOut
}
