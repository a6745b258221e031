package validator

import (
	stderrors "errors"
	"regexp"
	"strings"
	"sync"
	"time"

	"frontdesk/constants"
	"frontdesk/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	once     sync.Once
	validate *playground.Validate
)

// engine mirrors gin's binding so non-HTTP callers get the same rules.
func engine() *playground.Validate {
	once.Do(func() {
		validate = playground.New()
		validate.SetTagName("binding")
	})
	return validate
}

// Struct runs the binding tags of a request struct and reports failing fields.
func Struct(req interface{}) error {
	err := engine().Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs playground.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.Validation(err.Error())
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, lowerFirst(fe.Field()))
	}
	return errors.Validation("invalid or missing fields", fields...)
}

// PositiveAmount rejects zero and negative amounts.
func PositiveAmount(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errors.Validation(field+" must be greater than 0", field)
	}
	return nil
}

// NonNegativeAmount rejects negative amounts.
func NonNegativeAmount(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errors.Validation(field+" must not be negative", field)
	}
	return nil
}

// Occupancy checks 1 <= n <= MaxRoomOccupancy.
func Occupancy(n int) error {
	if n < 1 || n > constants.MaxRoomOccupancy {
		return errors.Validation("maxOccupancy must be between 1 and 10", "maxOccupancy")
	}
	return nil
}

// Date parses a YYYY-MM-DD value for the named field.
func Date(field, value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, errors.Validation(field+" is required", field)
	}
	t, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return time.Time{}, errors.Validation(field+" must be a YYYY-MM-DD date", field)
	}
	return t, nil
}

// StayDates resolves the check-out date for a stay: Short Time is forced onto the
// check-in day, Night Stay needs a check-out strictly after check-in.
func StayDates(stayType string, checkIn time.Time, checkOut *time.Time) (time.Time, error) {
	switch stayType {
	case constants.StayTypeShortTime:
		return checkIn, nil
	case constants.StayTypeNight:
		if checkOut == nil {
			return time.Time{}, errors.Validation("checkOutDate is required for a night stay", "checkOutDate")
		}
		if !checkOut.After(checkIn) {
			return time.Time{}, errors.Validation("checkOutDate must be after checkInDate", "checkOutDate")
		}
		return *checkOut, nil
	default:
		return time.Time{}, errors.Validation("stayType must be Night Stay or Short Time", "stayType")
	}
}

func PaymentMethod(method string) error {
	if !constants.IsPaymentMethod(method) {
		return errors.Validation("paymentMethod must be one of Cash, Card, Bank Transfer", "paymentMethod")
	}
	return nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email validates an optional email address.
func Email(email string) error {
	if email == "" {
		return nil
	}
	if !emailRegex.MatchString(email) {
		return errors.Validation("guestEmail is not a valid email", "guestEmail")
	}
	return nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
