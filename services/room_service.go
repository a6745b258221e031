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
	"frontdesk/validator"

	"gorm.io/gorm"
)

type RoomService struct {
	db     *gorm.DB
	clock  Clock
	locker *RoomLocker
	cache  ReportCache
	logger logger.Logger
}

type RoomServiceOptions struct {
	DB     *gorm.DB
	Clock  Clock
	Locker *RoomLocker
	Cache  ReportCache
	Logger logger.Logger
}

func NewRoomService(opts RoomServiceOptions) *RoomService {
	s := &RoomService{
		db:     opts.DB,
		clock:  opts.Clock,
		locker: opts.Locker,
		cache:  opts.Cache,
		logger: opts.Logger,
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
	if s.logger == nil {
		s.logger = logger.NewDiscardLogger()
	}
	return s
}

func (s *RoomService) Create(ctx context.Context, req dto.CreateRoomRequest) (*models.Room, error) {
	req.RoomNumber = strings.TrimSpace(req.RoomNumber)
	req.RoomType = strings.TrimSpace(req.RoomType)
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	if err := validator.PositiveAmount("pricePerNight", req.PricePerNight); err != nil {
		return nil, err
	}
	if err := validator.Occupancy(req.MaxOccupancy); err != nil {
		return nil, err
	}

	unlock := s.locker.Lock(req.RoomNumber)
	defer unlock()

	room := &models.Room{
		RoomNumber:    req.RoomNumber,
		RoomType:      req.RoomType,
		PricePerNight: req.PricePerNight.Round(2),
		MaxOccupancy:  req.MaxOccupancy,
		Description:   req.Description,
		Status:        constants.RoomStatusAvailable,
	}
	room.SetAmenities(req.Amenities)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.ensureNumberFree(tx, room.RoomNumber, 0); err != nil {
			return err
		}
		return tx.Create(room).Error
	})
	if err != nil {
		return nil, dbError("room", err)
	}

	s.invalidate(ctx)
	s.logger.Info("room %s created (%s)", room.RoomNumber, room.RoomType)
	return room, nil
}

func (s *RoomService) Update(ctx context.Context, id uint, req dto.UpdateRoomRequest) (*models.Room, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	if req.PricePerNight != nil {
		if err := validator.PositiveAmount("pricePerNight", *req.PricePerNight); err != nil {
			return nil, err
		}
	}
	if req.MaxOccupancy != nil {
		if err := validator.Occupancy(*req.MaxOccupancy); err != nil {
			return nil, err
		}
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	lockKeys := []string{current.RoomNumber}
	if req.RoomNumber != nil {
		lockKeys = append(lockKeys, strings.TrimSpace(*req.RoomNumber))
	}
	unlock := s.locker.Lock(lockKeys...)
	defer unlock()

	var room models.Room
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).First(&room, id).Error; err != nil {
			return err
		}

		if req.RoomNumber != nil {
			number := strings.TrimSpace(*req.RoomNumber)
			if number != room.RoomNumber {
				active, err := s.activeReservations(tx, room.ID)
				if err != nil {
					return err
				}
				if active > 0 {
					return apperrors.Conflict("room number cannot change while the room has an active booking")
				}
				if err := s.ensureNumberFree(tx, number, room.ID); err != nil {
					return err
				}
				room.RoomNumber = number
			}
		}
		if req.RoomType != nil {
			room.RoomType = strings.TrimSpace(*req.RoomType)
		}
		if req.PricePerNight != nil {
			room.PricePerNight = req.PricePerNight.Round(2)
		}
		if req.MaxOccupancy != nil {
			room.MaxOccupancy = *req.MaxOccupancy
		}
		if req.Amenities != nil {
			room.SetAmenities(req.Amenities)
		}
		if req.Description != nil {
			room.Description = *req.Description
		}
		return tx.Save(&room).Error
	})
	if err != nil {
		return nil, dbError("room", err)
	}

	s.logger.Info("room %s updated", room.RoomNumber)
	return &room, nil
}

// Delete removes a room that no active booking holds.
func (s *RoomService) Delete(ctx context.Context, id uint) error {
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	unlock := s.locker.Lock(current.RoomNumber)
	defer unlock()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := forUpdate(tx).First(&room, id).Error; err != nil {
			return err
		}
		active, err := s.activeReservations(tx, room.ID)
		if err != nil {
			return err
		}
		if active > 0 {
			return apperrors.ErrRoomHasBookings
		}
		return tx.Delete(&room).Error
	})
	if err != nil {
		return dbError("room", err)
	}

	s.invalidate(ctx)
	s.logger.Info("room %s deleted", current.RoomNumber)
	return nil
}

func (s *RoomService) Get(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, dbError("room", err)
	}
	return &room, nil
}

func (s *RoomService) GetByNumber(ctx context.Context, number string) (*models.Room, error) {
	var room models.Room
	if err := s.db.WithContext(ctx).Where("room_number = ?", number).First(&room).Error; err != nil {
		return nil, dbError("room", err)
	}
	return &room, nil
}

func (s *RoomService) List(ctx context.Context, filter dto.RoomFilter) ([]models.Room, error) {
	q := s.db.WithContext(ctx).Model(&models.Room{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.RoomType != "" {
		q = q.Where("room_type = ?", filter.RoomType)
	}

	var rooms []models.Room
	if err := q.Order("room_number asc").Find(&rooms).Error; err != nil {
		return nil, dbError("room", err)
	}
	return rooms, nil
}

// ListAvailable returns the rooms offered when taking a new booking.
func (s *RoomService) ListAvailable(ctx context.Context) ([]models.Room, error) {
	return s.List(ctx, dto.RoomFilter{Status: constants.RoomStatusAvailable})
}

// SyncStatus recomputes the room's status projection from its reservations.
// It is the only writer of Room.Status and must run inside the caller's transaction.
func (s *RoomService) SyncStatus(tx *gorm.DB, roomID uint) (*models.Room, error) {
	var room models.Room
	if err := tx.First(&room, roomID).Error; err != nil {
		return nil, err
	}

	var reservations []models.RoomReservation
	if err := tx.Where("room_id = ?", roomID).Order("from_date asc").Find(&reservations).Error; err != nil {
		return nil, err
	}

	status, holder := ProjectRoomStatus(reservations, s.clock.Today())
	updates := map[string]interface{}{
		"status":            status,
		"current_guest":     nil,
		"expected_checkout": nil,
	}
	room.Status = status
	room.CurrentGuest = nil
	room.ExpectedCheckout = nil
	if holder != nil {
		guest := holder.GuestName
		checkout := holder.CheckOutDate
		updates["current_guest"] = guest
		updates["expected_checkout"] = checkout
		room.CurrentGuest = &guest
		room.ExpectedCheckout = &checkout
	}

	if err := tx.Model(&models.Room{}).Where("id = ?", roomID).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// RefreshStatuses re-projects every room for a new day.
func (s *RoomService) RefreshStatuses(ctx context.Context) (int, error) {
	var rooms []models.Room
	if err := s.db.WithContext(ctx).Order("room_number asc").Find(&rooms).Error; err != nil {
		return 0, dbError("room", err)
	}

	changed := 0
	for _, r := range rooms {
		unlock := s.locker.Lock(r.RoomNumber)
		var updated *models.Room
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var err error
			updated, err = s.SyncStatus(tx, r.ID)
			return err
		})
		unlock()
		if err != nil {
			return changed, dbError("room", err)
		}
		if updated.Status != r.Status {
			changed++
			s.logger.Info("room %s status %s -> %s", r.RoomNumber, r.Status, updated.Status)
		}
	}
	return changed, nil
}

// ProjectRoomStatus derives the room label for a day: Occupied while any booking is checked
// in, Reserved when an upcoming booking starts today or is overdue, otherwise Available.
// The returned reservation is the one the label refers to.
func ProjectRoomStatus(reservations []models.RoomReservation, today time.Time) (string, *models.RoomReservation) {
	for i := range reservations {
		if reservations[i].State == constants.BookingStatusCheckedIn {
			return constants.RoomStatusOccupied, &reservations[i]
		}
	}
	for i := range reservations {
		r := &reservations[i]
		if r.State == constants.BookingStatusUpcoming && !r.FromDate.After(today) {
			return constants.RoomStatusReserved, r
		}
	}
	return constants.RoomStatusAvailable, nil
}

func (s *RoomService) ensureNumberFree(tx *gorm.DB, number string, exceptID uint) error {
	var count int64
	q := tx.Model(&models.Room{}).Where("room_number = ?", number)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperrors.Validation("room number "+number+" already exists", "roomNumber")
	}
	return nil
}

func (s *RoomService) activeReservations(tx *gorm.DB, roomID uint) (int64, error) {
	var count int64
	err := tx.Model(&models.RoomReservation{}).Where("room_id = ?", roomID).Count(&count).Error
	return count, err
}

func (s *RoomService) invalidate(ctx context.Context) {
	if err := s.cache.Bump(ctx); err != nil {
		s.logger.Warn("report cache invalidation failed: %v", err)
	}
}
