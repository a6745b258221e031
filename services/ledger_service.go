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
	"frontdesk/utils"
	"frontdesk/validator"

	"gorm.io/gorm"
)

// LedgerService records expenses, manual incomes and the room sales produced by checkouts.
type LedgerService struct {
	db       *gorm.DB
	cache    ReportCache
	logger   logger.Logger
	currency string
}

type LedgerServiceOptions struct {
	DB       *gorm.DB
	Cache    ReportCache
	Logger   logger.Logger
	Currency string
}

func NewLedgerService(opts LedgerServiceOptions) *LedgerService {
	s := &LedgerService{
		db:       opts.DB,
		cache:    opts.Cache,
		logger:   opts.Logger,
		currency: opts.Currency,
	}
	if s.cache == nil {
		s.cache = NoopReportCache{}
	}
	if s.logger == nil {
		s.logger = logger.NewDiscardLogger()
	}
	return s
}

func (s *LedgerService) RecordExpense(ctx context.Context, req dto.CreateExpenseRequest) (*models.Expense, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	if err := validator.PositiveAmount("amount", req.Amount); err != nil {
		return nil, err
	}
	date, err := validator.Date("date", req.Date)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		Description: strings.TrimSpace(req.Description),
		Amount:      utils.Cents(req.Amount),
		Category:    strings.TrimSpace(req.Category),
		ExpenseDate: date,
		CreatedBy:   creator(req.CreatedBy),
	}
	if err := s.db.WithContext(ctx).Create(expense).Error; err != nil {
		return nil, dbError("expense", err)
	}

	s.invalidate(ctx)
	s.logger.Info("expense %d recorded: %s %s on %s", expense.ID, expense.Category,
		utils.FormatAmount(s.currency, expense.Amount), utils.FormatDate(date))
	return expense, nil
}

func (s *LedgerService) DeleteExpense(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Expense{}, id)
	if res.Error != nil {
		return dbError("expense", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("expense")
	}
	s.invalidate(ctx)
	s.logger.Info("expense %d deleted", id)
	return nil
}

func (s *LedgerService) ListExpenses(ctx context.Context, filter dto.LedgerFilter) ([]models.Expense, error) {
	q, err := s.filtered(ctx, &models.Expense{}, "expense_date", filter)
	if err != nil {
		return nil, err
	}
	var expenses []models.Expense
	if err := q.Order("expense_date desc, id desc").Find(&expenses).Error; err != nil {
		return nil, dbError("expense", err)
	}
	return expenses, nil
}

func (s *LedgerService) RecordIncome(ctx context.Context, req dto.CreateIncomeRequest) (*models.Income, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	if err := validator.PositiveAmount("amount", req.Amount); err != nil {
		return nil, err
	}
	date, err := validator.Date("date", req.Date)
	if err != nil {
		return nil, err
	}

	income := &models.Income{
		Description: strings.TrimSpace(req.Description),
		Amount:      utils.Cents(req.Amount),
		Category:    strings.TrimSpace(req.Category),
		IncomeDate:  date,
		CreatedBy:   creator(req.CreatedBy),
	}
	if err := s.db.WithContext(ctx).Create(income).Error; err != nil {
		return nil, dbError("income", err)
	}

	s.invalidate(ctx)
	s.logger.Info("income %d recorded: %s %s on %s", income.ID, income.Category,
		utils.FormatAmount(s.currency, income.Amount), utils.FormatDate(date))
	return income, nil
}

func (s *LedgerService) DeleteIncome(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Income{}, id)
	if res.Error != nil {
		return dbError("income", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("income")
	}
	s.invalidate(ctx)
	s.logger.Info("income %d deleted", id)
	return nil
}

func (s *LedgerService) ListIncomes(ctx context.Context, filter dto.LedgerFilter) ([]models.Income, error) {
	q, err := s.filtered(ctx, &models.Income{}, "income_date", filter)
	if err != nil {
		return nil, err
	}
	var incomes []models.Income
	if err := q.Order("income_date desc, id desc").Find(&incomes).Error; err != nil {
		return nil, dbError("income", err)
	}
	return incomes, nil
}

// ListRoomSales returns checkout sale entries, newest first.
func (s *LedgerService) ListRoomSales(ctx context.Context, dr dto.DateRange) ([]models.DailySale, error) {
	q, err := s.filtered(ctx, &models.DailySale{}, "sale_date", dto.LedgerFilter{DateRange: dr})
	if err != nil {
		return nil, err
	}
	var sales []models.DailySale
	if err := q.Order("sale_date desc, id desc").Find(&sales).Error; err != nil {
		return nil, dbError("daily sale", err)
	}
	return sales, nil
}

// recordSale writes the sale entry for a checkout inside the checkout transaction.
// A negative balance is stored as a refund of its magnitude.
func (s *LedgerService) recordSale(tx *gorm.DB, booking *models.Booking, bill Settlement, at time.Time) (*models.DailySale, error) {
	kind := constants.SaleKindCollection
	if bill.IsRefund() {
		kind = constants.SaleKindRefund
	}
	sale := &models.DailySale{
		BookingID:     booking.ID,
		SaleDate:      utils.DateOf(at),
		GuestName:     booking.GuestName,
		RoomNumber:    booking.RoomNumber,
		PaymentMethod: booking.PaymentMethod,
		Kind:          kind,
		Amount:        bill.Balance.Abs(),
		GrossAmount:   utils.Cents(bill.Gross()),
		AdvanceAmount: bill.Advance,
		RecordedAt:    at,
	}
	if err := tx.Create(sale).Error; err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *LedgerService) filtered(ctx context.Context, model interface{}, dateColumn string, filter dto.LedgerFilter) (*gorm.DB, error) {
	if err := validator.Struct(filter); err != nil {
		return nil, err
	}
	from, to, err := parseRange(filter.DateRange)
	if err != nil {
		return nil, err
	}
	q := s.db.WithContext(ctx).Model(model)
	if from != nil {
		q = q.Where(dateColumn+" >= ?", *from)
	}
	if to != nil {
		q = q.Where(dateColumn+" <= ?", *to)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	return q, nil
}

func (s *LedgerService) invalidate(ctx context.Context) {
	if err := s.cache.Bump(ctx); err != nil {
		s.logger.Warn("report cache invalidation failed: %v", err)
	}
}

// parseRange reads an optional inclusive date window.
func parseRange(dr dto.DateRange) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if dr.StartDate != "" {
		t, err := validator.Date("start_date", dr.StartDate)
		if err != nil {
			return nil, nil, err
		}
		from = &t
	}
	if dr.EndDate != "" {
		t, err := validator.Date("end_date", dr.EndDate)
		if err != nil {
			return nil, nil, err
		}
		to = &t
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, apperrors.Validation("end_date must not be before start_date", "end_date")
	}
	return from, to, nil
}

func creator(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return constants.DefaultCreatedBy
	}
	return tag
}
