package builders

import (
	"time"

	"frontdesk/constants"
	"frontdesk/dto"

	"github.com/shopspring/decimal"
)

// BookingBuilder assembles a booking request step by step. It starts as a
// one-night stay so callers only set what differs.
type BookingBuilder struct {
	req dto.CreateBookingRequest
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		req: dto.CreateBookingRequest{
			StayType: constants.StayTypeNight,
		},
	}
}

func (b *BookingBuilder) WithGuestInfo(name, email, phone string) *BookingBuilder {
	b.req.GuestName = name
	b.req.GuestEmail = email
	b.req.GuestPhone = phone
	return b
}

func (b *BookingBuilder) WithIdentity(document, country string) *BookingBuilder {
	b.req.GuestIDDocument = document
	b.req.GuestCountry = country
	return b
}

func (b *BookingBuilder) WithRoom(roomNumber string) *BookingBuilder {
	b.req.RoomNumber = roomNumber
	return b
}

// WithNights books [checkIn, checkIn+nights) as a Night Stay.
func (b *BookingBuilder) WithNights(checkIn time.Time, nights int) *BookingBuilder {
	b.req.StayType = constants.StayTypeNight
	b.req.CheckInDate = checkIn.Format(constants.DateLayout)
	b.req.CheckOutDate = checkIn.AddDate(0, 0, nights).Format(constants.DateLayout)
	return b
}

func (b *BookingBuilder) WithDates(checkIn, checkOut string) *BookingBuilder {
	b.req.CheckInDate = checkIn
	b.req.CheckOutDate = checkOut
	return b
}

func (b *BookingBuilder) ShortTime(day time.Time) *BookingBuilder {
	b.req.StayType = constants.StayTypeShortTime
	b.req.CheckInDate = day.Format(constants.DateLayout)
	b.req.CheckOutDate = ""
	return b
}

func (b *BookingBuilder) WithAmount(amount int64) *BookingBuilder {
	b.req.BookingAmount = decimal.NewFromInt(amount)
	return b
}

func (b *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	b.req.AdditionalNotes = notes
	return b
}

func (b *BookingBuilder) Build() dto.CreateBookingRequest {
	return b.req
}
