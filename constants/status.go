package constants

// Booking status
const (
	BookingStatusUpcoming  = "Upcoming"
	BookingStatusCheckedIn = "Checked-in"
	BookingStatusCompleted = "Completed"
	BookingStatusCancelled = "Cancelled"
)

// Room status
const (
	RoomStatusAvailable = "Available"
	RoomStatusOccupied  = "Occupied"
	RoomStatusReserved  = "Reserved"
)

// Stay type
const (
	StayTypeNight     = "Night Stay"
	StayTypeShortTime = "Short Time"
)

// Payment method
const (
	PaymentMethodCash         = "Cash"
	PaymentMethodCard         = "Card"
	PaymentMethodBankTransfer = "Bank Transfer"
)

// Room sale kind
const (
	SaleKindCollection = "Collection"
	SaleKindRefund     = "Refund"
)

const (
	DefaultCreatedBy = "Admin"
	DateLayout       = "2006-01-02"
	MaxRoomOccupancy = 10
	MaxReportDays    = 366
)

var PaymentMethods = []string{PaymentMethodCash, PaymentMethodCard, PaymentMethodBankTransfer}

func IsPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

func IsStayType(stayType string) bool {
	return stayType == StayTypeNight || stayType == StayTypeShortTime
}

// IsActiveBooking reports whether a booking in this status still holds its room.
func IsActiveBooking(status string) bool {
	return status == BookingStatusUpcoming || status == BookingStatusCheckedIn
}
