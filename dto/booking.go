package dto

import "github.com/shopspring/decimal"

type CreateBookingRequest struct {
	GuestName       string          `json:"guestName" binding:"required,max=120"`
	GuestEmail      string          `json:"guestEmail" binding:"omitempty,email"`
	GuestPhone      string          `json:"guestPhone" binding:"omitempty,max=30"`
	GuestIDDocument string          `json:"guestIdDocument" binding:"omitempty,max=50"`
	GuestCountry    string          `json:"guestCountry" binding:"omitempty,max=60"`
	RoomNumber      string          `json:"roomNumber" binding:"required,max=20"`
	CheckInDate     string          `json:"checkInDate" binding:"required,datetime=2006-01-02"`
	CheckOutDate    string          `json:"checkOutDate" binding:"omitempty,datetime=2006-01-02"`
	StayType        string          `json:"stayType" binding:"required,oneof='Night Stay' 'Short Time'"`
	BookingAmount   decimal.Decimal `json:"bookingAmount"`
	AdditionalNotes string          `json:"additionalNotes"`
}

type CheckInRequest struct {
	AdvanceAmount   decimal.Decimal `json:"advanceAmount"`
	AdditionalNotes *string         `json:"additionalNotes"`
}

type CheckoutRequest struct {
	AdditionalAmount decimal.Decimal `json:"additionalAmount"`
	DiscountAmount   decimal.Decimal `json:"discountAmount"`
	PaymentMethod    string          `json:"paymentMethod" binding:"required,oneof=Cash Card 'Bank Transfer'"`
}

// EditBookingRequest leaves nil fields untouched.
type EditBookingRequest struct {
	CheckInDate     *string `json:"checkInDate" binding:"omitempty,datetime=2006-01-02"`
	CheckOutDate    *string `json:"checkOutDate" binding:"omitempty,datetime=2006-01-02"`
	AdditionalNotes *string `json:"additionalNotes"`
}

type BookingFilter struct {
	PageQuery
	Status     string `form:"status" binding:"omitempty,oneof=Upcoming Checked-in Completed Cancelled"`
	RoomNumber string `form:"room_number"`
}
