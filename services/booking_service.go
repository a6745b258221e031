package services

import (
	"context"
	"strings"
	"time"

	"frontdesk/constants"
	"frontdesk/dto"
	apperrors "frontdesk/errors"
	"frontdesk/models"
	"frontdesk/services/logger"
	"frontdesk/services/notification"
	"frontdesk/utils"
	"frontdesk/validator"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BookingService drives bookings through Upcoming -> Checked-in -> Completed, or
// Upcoming -> Cancelled, keeping each room's reservation index and status in step.
type BookingService struct {
	db            *gorm.DB
	rooms         *RoomService
	ledger        *LedgerService
	clock         Clock
	locker        *RoomLocker
	cache         ReportCache
	notifier      notification.Service
	logger        logger.Logger
	currency      string
	defaultCharge decimal.Decimal
	upcomingLimit int
}

type BookingServiceOptions struct {
	DB            *gorm.DB
	Rooms         *RoomService
	Ledger        *LedgerService
	Clock         Clock
	Locker        *RoomLocker
	Cache         ReportCache
	Notifier      notification.Service
	Logger        logger.Logger
	Currency      string
	DefaultCharge decimal.Decimal
	UpcomingLimit int
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	s := &BookingService{
		db:            opts.DB,
		rooms:         opts.Rooms,
		ledger:        opts.Ledger,
		clock:         opts.Clock,
		locker:        opts.Locker,
		cache:         opts.Cache,
		notifier:      opts.Notifier,
		logger:        opts.Logger,
		currency:      opts.Currency,
		defaultCharge: opts.DefaultCharge,
		upcomingLimit: opts.UpcomingLimit,
	}
	if s.clock == nil {
		s.clock = NewSystemClock(time.UTC)
	}
	if s.locker == nil {
		s.locker = NewRoomLocker()
	}
	if s.cache == nil {
		s.cache = NoopReportCache{}
	}
	if s.notifier == nil {
		s.notifier = notification.Discard{}
	}
	if s.logger == nil {
		s.logger = logger.NewDiscardLogger()
	}
	if s.upcomingLimit <= 0 {
		s.upcomingLimit = 10
	}
	return s
}

// CheckoutResult is a completed booking with its bill and ledger entry.
type CheckoutResult struct {
	Booking       *models.Booking   `json:"booking"`
	Bill          Settlement        `json:"bill"`
	PaymentMethod string            `json:"paymentMethod"`
	Refund        bool              `json:"refund"`
	Sale          *models.DailySale `json:"sale"`
}

// Create stores a new Upcoming booking and reserves its nights on the room.
func (s *BookingService) Create(ctx context.Context, req dto.CreateBookingRequest) (*models.Booking, error) {
	req.GuestName = strings.TrimSpace(req.GuestName)
	req.RoomNumber = strings.TrimSpace(req.RoomNumber)
	req.GuestEmail = strings.TrimSpace(req.GuestEmail)
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	if err := validator.PositiveAmount("bookingAmount", req.BookingAmount); err != nil {
		return nil, err
	}
	if err := validator.Email(req.GuestEmail); err != nil {
		return nil, err
	}
	checkIn, err := validator.Date("checkInDate", req.CheckInDate)
	if err != nil {
		return nil, err
	}
	var checkOutPtr *time.Time
	if req.CheckOutDate != "" {
		t, err := validator.Date("checkOutDate", req.CheckOutDate)
		if err != nil {
			return nil, err
		}
		checkOutPtr = &t
	}
	checkOut, err := validator.StayDates(req.StayType, checkIn, checkOutPtr)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		GuestName:        req.GuestName,
		GuestEmail:       req.GuestEmail,
		GuestPhone:       strings.TrimSpace(req.GuestPhone),
		GuestIDDocument:  strings.TrimSpace(req.GuestIDDocument),
		GuestCountry:     strings.TrimSpace(req.GuestCountry),
		RoomNumber:       req.RoomNumber,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		StayType:         req.StayType,
		BookingAmount:    utils.Cents(req.BookingAmount),
		AdvanceAmount:    decimal.Zero,
		AdditionalAmount: decimal.Zero,
		DiscountAmount:   decimal.Zero,
		SettledAmount:    decimal.Zero,
		AdditionalNotes:  req.AdditionalNotes,
		Status:           constants.BookingStatusUpcoming,
	}

	unlock := s.locker.Lock(booking.RoomNumber)
	defer unlock()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := forUpdate(tx).Where("room_number = ?", booking.RoomNumber).First(&room).Error; err != nil {
			return dbError("room", err)
		}

		from, to := models.ReservationSpan(booking.StayType, booking.CheckInDate, booking.CheckOutDate)
		if err := s.ensureNightsFree(tx, room.ID, 0, from, to); err != nil {
			return err
		}

		if err := tx.Create(booking).Error; err != nil {
			return err
		}
		reservation := &models.RoomReservation{
			RoomID:       room.ID,
			RoomNumber:   room.RoomNumber,
			BookingID:    booking.ID,
			GuestName:    booking.GuestName,
			FromDate:     from,
			ToDate:       to,
			CheckOutDate: booking.CheckOutDate,
			State:        constants.BookingStatusUpcoming,
		}
		if err := tx.Create(reservation).Error; err != nil {
			return err
		}
		_, err := s.rooms.SyncStatus(tx, room.ID)
		return err
	})
	if err != nil {
		return nil, dbError("booking", err)
	}

	s.afterWrite(ctx, booking, "booked")
	return booking, nil
}

// CheckIn moves an Upcoming booking to Checked-in. A room occupied by another guest, or
// held tonight for another arriving guest, is reported before any other problem with the
// request.
func (s *BookingService) CheckIn(ctx context.Context, id uint, req dto.CheckInRequest) (*models.Booking, error) {
	booking, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	unlock := s.locker.Lock(booking.RoomNumber)
	defer unlock()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).First(booking, id).Error; err != nil {
			return err
		}

		var occupied int64
		err := tx.Model(&models.RoomReservation{}).
			Where("room_number = ? AND state = ? AND booking_id <> ?", booking.RoomNumber, constants.BookingStatusCheckedIn, booking.ID).
			Count(&occupied).Error
		if err != nil {
			return err
		}
		if occupied > 0 {
			return apperrors.ErrRoomNotAvailable
		}

		// tonight belongs to another guest who has not arrived yet
		today := s.clock.Today()
		var held int64
		err = tx.Model(&models.RoomReservation{}).
			Where("room_number = ? AND state = ? AND booking_id <> ? AND from_date <= ? AND to_date > ?",
				booking.RoomNumber, constants.BookingStatusUpcoming, booking.ID, today, today).
			Count(&held).Error
		if err != nil {
			return err
		}
		if held > 0 {
			return apperrors.ErrRoomNotAvailable
		}

		if err := models.GetBookingState(booking.Status).CheckIn(booking); err != nil {
			return err
		}
		if err := validator.NonNegativeAmount("advanceAmount", req.AdvanceAmount); err != nil {
			return err
		}

		now := s.clock.Now()
		booking.AdvanceAmount = utils.Cents(req.AdvanceAmount)
		if req.AdditionalNotes != nil {
			booking.AdditionalNotes = *req.AdditionalNotes
		}
		booking.CheckedInAt = &now
		if err := tx.Save(booking).Error; err != nil {
			return err
		}

		reservation, err := s.reservationOf(tx, booking.ID)
		if err != nil {
			return err
		}
		updates := map[string]interface{}{"state": constants.BookingStatusCheckedIn}
		if reservation.FromDate.After(today) {
			// early arrival holds the nights before the booked stay as well
			if err := s.ensureNightsFree(tx, reservation.RoomID, booking.ID, today, reservation.FromDate); err != nil {
				return err
			}
			updates["from_date"] = today
		}
		if err := tx.Model(reservation).Updates(updates).Error; err != nil {
			return err
		}
		_, err = s.rooms.SyncStatus(tx, reservation.RoomID)
		return err
	})
	if err != nil {
		return nil, dbError("booking", err)
	}

	s.afterWrite(ctx, booking, "checked in")
	return booking, nil
}

// Checkout settles the bill, records the sale and releases the room.
func (s *BookingService) Checkout(ctx context.Context, id uint, req dto.CheckoutRequest) (*CheckoutResult, error) {
	booking, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	unlock := s.locker.Lock(booking.RoomNumber)
	defer unlock()

	var result *CheckoutResult
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).First(booking, id).Error; err != nil {
			return err
		}
		if err := models.GetBookingState(booking.Status).Checkout(booking); err != nil {
			return err
		}
		if err := validator.NonNegativeAmount("additionalAmount", req.AdditionalAmount); err != nil {
			return err
		}
		if err := validator.NonNegativeAmount("discountAmount", req.DiscountAmount); err != nil {
			return err
		}
		if err := validator.PaymentMethod(req.PaymentMethod); err != nil {
			return err
		}

		bill := Settle(RoomCharges(booking.BookingAmount, s.defaultCharge),
			booking.AdvanceAmount, req.AdditionalAmount, req.DiscountAmount)

		now := s.clock.Now()
		booking.AdditionalAmount = bill.Additional
		booking.DiscountAmount = bill.Discount
		booking.SettledAmount = bill.Balance
		booking.PaymentMethod = req.PaymentMethod
		booking.CheckedOutAt = &now
		if err := tx.Save(booking).Error; err != nil {
			return err
		}

		reservation, err := s.reservationOf(tx, booking.ID)
		if err != nil {
			return err
		}
		if err := tx.Delete(reservation).Error; err != nil {
			return err
		}

		sale, err := s.ledger.recordSale(tx, booking, bill, now)
		if err != nil {
			return err
		}
		if _, err := s.rooms.SyncStatus(tx, reservation.RoomID); err != nil {
			return err
		}

		result = &CheckoutResult{
			Booking:       booking,
			Bill:          bill,
			PaymentMethod: req.PaymentMethod,
			Refund:        bill.IsRefund(),
			Sale:          sale,
		}
		return nil
	})
	if err != nil {
		return nil, dbError("booking", err)
	}

	if result.Refund {
		s.logger.Info("booking %s settled: refund %s via %s", booking.Reference,
			utils.FormatAmount(s.currency, result.Bill.Balance.Abs()), result.PaymentMethod)
	} else {
		s.logger.Info("booking %s settled: collected %s via %s", booking.Reference,
			utils.FormatAmount(s.currency, result.Bill.Balance), result.PaymentMethod)
	}
	s.afterWrite(ctx, booking, "checked out")
	return result, nil
}

// Cancel is only valid for Upcoming bookings; checked-in stays must be checked out.
func (s *BookingService) Cancel(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	unlock := s.locker.Lock(booking.RoomNumber)
	defer unlock()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).First(booking, id).Error; err != nil {
			return err
		}
		if err := models.GetBookingState(booking.Status).Cancel(booking); err != nil {
			return err
		}

		now := s.clock.Now()
		booking.CancelledAt = &now
		if err := tx.Save(booking).Error; err != nil {
			return err
		}

		reservation, err := s.reservationOf(tx, booking.ID)
		if err != nil {
			return err
		}
		if err := tx.Delete(reservation).Error; err != nil {
			return err
		}
		_, err = s.rooms.SyncStatus(tx, reservation.RoomID)
		return err
	})
	if err != nil {
		return nil, dbError("booking", err)
	}

	s.afterWrite(ctx, booking, "cancelled")
	return booking, nil
}

// Edit changes dates or notes of an active booking. New dates must not overlap
// another active booking on the same room.
func (s *BookingService) Edit(ctx context.Context, id uint, req dto.EditBookingRequest) (*models.Booking, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	booking, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	unlock := s.locker.Lock(booking.RoomNumber)
	defer unlock()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).First(booking, id).Error; err != nil {
			return err
		}
		if err := models.GetBookingState(booking.Status).Edit(booking); err != nil {
			return err
		}

		checkIn, checkOut := booking.CheckInDate, booking.CheckOutDate
		if req.CheckInDate != nil {
			t, err := validator.Date("checkInDate", *req.CheckInDate)
			if err != nil {
				return err
			}
			checkIn = t
		}
		if req.CheckOutDate != nil {
			t, err := validator.Date("checkOutDate", *req.CheckOutDate)
			if err != nil {
				return err
			}
			checkOut = t
		}
		checkOut, err := validator.StayDates(booking.StayType, checkIn, &checkOut)
		if err != nil {
			return err
		}

		reservation, err := s.reservationOf(tx, booking.ID)
		if err != nil {
			return err
		}
		from, to := models.ReservationSpan(booking.StayType, checkIn, checkOut)
		if booking.Status == constants.BookingStatusCheckedIn && reservation.FromDate.Before(from) {
			from = reservation.FromDate
		}
		if err := s.ensureNightsFree(tx, reservation.RoomID, booking.ID, from, to); err != nil {
			return err
		}

		booking.CheckInDate = checkIn
		booking.CheckOutDate = checkOut
		if req.AdditionalNotes != nil {
			booking.AdditionalNotes = *req.AdditionalNotes
		}
		if err := tx.Save(booking).Error; err != nil {
			return err
		}

		err = tx.Model(reservation).Updates(map[string]interface{}{
			"from_date":      from,
			"to_date":        to,
			"check_out_date": checkOut,
		}).Error
		if err != nil {
			return err
		}
		_, err = s.rooms.SyncStatus(tx, reservation.RoomID)
		return err
	})
	if err != nil {
		return nil, dbError("booking", err)
	}

	s.afterWrite(ctx, booking, "updated")
	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, dbError("booking", err)
	}
	return &booking, nil
}

// List returns one page of bookings, newest first, with the total match count.
func (s *BookingService) List(ctx context.Context, filter dto.BookingFilter) ([]models.Booking, int64, error) {
	if err := validator.Struct(filter); err != nil {
		return nil, 0, err
	}
	filter.Normalize()

	q := s.db.WithContext(ctx).Model(&models.Booking{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.RoomNumber != "" {
		q = q.Where("room_number = ?", filter.RoomNumber)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, dbError("booking", err)
	}
	var bookings []models.Booking
	err := q.Order("created_at desc, id desc").Offset(filter.Offset()).Limit(filter.Limit).Find(&bookings).Error
	if err != nil {
		return nil, 0, dbError("booking", err)
	}
	return bookings, total, nil
}

// ListUpcoming returns the next arrivals from today on, soonest first.
func (s *BookingService) ListUpcoming(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Where("status = ? AND check_in_date >= ?", constants.BookingStatusUpcoming, s.clock.Today()).
		Order("check_in_date asc, id asc").
		Limit(s.upcomingLimit).
		Find(&bookings).Error
	if err != nil {
		return nil, dbError("booking", err)
	}
	return bookings, nil
}

// ListCheckedIn returns the guests currently in house.
func (s *BookingService) ListCheckedIn(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Where("status = ?", constants.BookingStatusCheckedIn).
		Order("check_out_date asc, room_number asc").
		Find(&bookings).Error
	if err != nil {
		return nil, dbError("booking", err)
	}
	return bookings, nil
}

func (s *BookingService) ensureNightsFree(tx *gorm.DB, roomID, exceptBooking uint, from, to time.Time) error {
	var count int64
	q := tx.Model(&models.RoomReservation{}).
		Where("room_id = ? AND from_date < ? AND to_date > ?", roomID, to, from)
	if exceptBooking != 0 {
		q = q.Where("booking_id <> ?", exceptBooking)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrRoomNotAvailable
	}
	return nil
}

func (s *BookingService) reservationOf(tx *gorm.DB, bookingID uint) (*models.RoomReservation, error) {
	var reservation models.RoomReservation
	if err := tx.Where("booking_id = ?", bookingID).First(&reservation).Error; err != nil {
		return nil, apperrors.Internal("booking has no room reservation", err)
	}
	return &reservation, nil
}

func (s *BookingService) afterWrite(ctx context.Context, booking *models.Booking, action string) {
	s.logger.Info("booking %s (%s, room %s) %s -> %s", booking.Reference, booking.GuestName,
		booking.RoomNumber, action, booking.Status)
	if err := s.cache.Bump(ctx); err != nil {
		s.logger.Warn("report cache invalidation failed: %v", err)
	}
	if err := s.notifier.SendMessage(notification.BookingEvent(action, booking.GuestName, booking.RoomNumber)); err != nil {
		s.logger.Debug("booking notice not delivered: %v", err)
	}
}
