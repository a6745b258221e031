package services

import (
	"context"
	"fmt"
	"time"

	"frontdesk/constants"
	"frontdesk/dto"
	apperrors "frontdesk/errors"
	"frontdesk/models"
	"frontdesk/services/logger"
	"frontdesk/types"
	"frontdesk/utils"
	"frontdesk/validator"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

var hundred = decimal.NewFromInt(100)

// ReportService aggregates the ledger on demand. Reports are never stored as
// authoritative state; the cache only holds copies keyed by ledger generation.
type ReportService struct {
	db       *gorm.DB
	clock    Clock
	cache    ReportCache
	logger   logger.Logger
	currency string
	group    singleflight.Group
}

type ReportServiceOptions struct {
	DB       *gorm.DB
	Clock    Clock
	Cache    ReportCache
	Logger   logger.Logger
	Currency string
}

func NewReportService(opts ReportServiceOptions) *ReportService {
	s := &ReportService{
		db:       opts.DB,
		clock:    opts.Clock,
		cache:    opts.Cache,
		logger:   opts.Logger,
		currency: opts.Currency,
	}
	if s.clock == nil {
		s.clock = NewSystemClock(time.UTC)
	}
	if s.cache == nil {
		s.cache = NoopReportCache{}
	}
	if s.logger == nil {
		s.logger = logger.NewDiscardLogger()
	}
	return s
}

// ledger is one consistent read of everything a report needs.
type ledger struct {
	sales    []models.DailySale
	incomes  []models.Income
	expenses []models.Expense
	stays    []models.Booking
	rooms    int64
}

// DailyReports returns one entry per day of [start, end], empty days included.
func (s *ReportService) DailyReports(ctx context.Context, start, end string) ([]types.DailyReport, error) {
	from, err := validator.Date("start_date", start)
	if err != nil {
		return nil, err
	}
	to, err := validator.Date("end_date", end)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, apperrors.Validation("end_date must not be before start_date", "end_date")
	}
	if utils.NightsBetween(from, to)+1 > constants.MaxReportDays {
		return nil, apperrors.Validation(fmt.Sprintf("date range must not exceed %d days", constants.MaxReportDays), "end_date")
	}

	key := fmt.Sprintf("daily:%s:%s", utils.FormatDate(from), utils.FormatDate(to))
	return cached(ctx, s, key, func() ([]types.DailyReport, error) {
		l, err := s.load(ctx, from, to.AddDate(0, 0, 1), false)
		if err != nil {
			return nil, err
		}
		return buildDailyReports(l, from, to), nil
	})
}

// MonthlyReports returns the twelve months of a year; zero means the current year.
func (s *ReportService) MonthlyReports(ctx context.Context, year int) ([]types.MonthlyReport, error) {
	if year == 0 {
		year = s.clock.Today().Year()
	}
	if year < 2000 || year > 2100 {
		return nil, apperrors.Validation("year must be between 2000 and 2100", "year")
	}

	return cached(ctx, s, fmt.Sprintf("monthly:%d", year), func() ([]types.MonthlyReport, error) {
		from := utils.MonthStart(year, time.January)
		l, err := s.load(ctx, from, from.AddDate(1, 0, 0), true)
		if err != nil {
			return nil, err
		}
		reports := make([]types.MonthlyReport, 0, 12)
		for m := time.January; m <= time.December; m++ {
			reports = append(reports, buildMonthlyReport(l, year, m))
		}
		return reports, nil
	})
}

// MonthComparison compares the current calendar month with the one before it.
func (s *ReportService) MonthComparison(ctx context.Context) (*types.MonthComparison, error) {
	today := s.clock.Today()
	current := utils.MonthStart(today.Year(), today.Month())
	previous := current.AddDate(0, -1, 0)

	out, err := cached(ctx, s, "comparison:"+current.Format("2006-01"), func() (types.MonthComparison, error) {
		l, err := s.load(ctx, previous, current.AddDate(0, 1, 0), true)
		if err != nil {
			return types.MonthComparison{}, err
		}
		cur := buildMonthlyReport(l, current.Year(), current.Month())
		prev := buildMonthlyReport(l, previous.Year(), previous.Month())
		return types.MonthComparison{
			Current:  cur,
			Previous: prev,
			Changes: types.ComparisonChanges{
				Revenue:  utils.PercentChange(cur.Revenue, prev.Revenue),
				Expenses: utils.PercentChange(cur.Expenses, prev.Expenses),
				Profit:   utils.PercentChange(cur.Profit, prev.Profit),
				BookingsCount: utils.PercentChange(decimal.NewFromInt(int64(cur.BookingsCount)),
					decimal.NewFromInt(int64(prev.BookingsCount))),
			},
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// FinancialSummary totals the ledger over an optional date window.
func (s *ReportService) FinancialSummary(ctx context.Context, dr dto.DateRange) (*types.FinancialSummary, error) {
	from, to, err := parseRange(dr)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("summary:%s:%s", dr.StartDate, dr.EndDate)
	out, err := cached(ctx, s, key, func() (types.FinancialSummary, error) {
		var lo, hi time.Time
		if from != nil {
			lo = *from
		}
		if to != nil {
			hi = to.AddDate(0, 0, 1)
		}
		l, err := s.load(ctx, lo, hi, false)
		if err != nil {
			return types.FinancialSummary{}, err
		}
		summary := buildFinancialSummary(l, s.currency)
		summary.StartDate = dr.StartDate
		summary.EndDate = dr.EndDate
		return summary, nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// cached serves key from the report cache, computing and storing it on a miss.
// The generation is read before computing so a concurrent write cannot be masked.
func cached[T any](ctx context.Context, s *ReportService, key string, compute func() (T, error)) (T, error) {
	var out T
	gen, genErr := s.cache.Generation(ctx)
	if genErr != nil {
		s.logger.Warn("report cache unavailable: %v", genErr)
	}
	fullKey := fmt.Sprintf("reports:%d:%s", gen, key)
	if genErr == nil {
		hit, err := s.cache.Get(ctx, fullKey, &out)
		if err != nil {
			s.logger.Warn("report cache read %s: %v", fullKey, err)
		}
		if hit {
			return out, nil
		}
	}

	v, err, _ := s.group.Do(fullKey, func() (interface{}, error) {
		value, err := compute()
		if err != nil {
			return nil, err
		}
		if genErr == nil {
			if err := s.cache.Set(ctx, fullKey, value); err != nil {
				s.logger.Warn("report cache write %s: %v", fullKey, err)
			}
		}
		return value, nil
	})
	if err != nil {
		return out, err
	}
	return v.(T), nil
}

// load reads ledger records dated in [from, to). A zero bound is open.
func (s *ReportService) load(ctx context.Context, from, to time.Time, withStays bool) (*ledger, error) {
	l := &ledger{}
	err := readSnapshot(ctx, s.db, func(tx *gorm.DB) error {
		if err := dated(tx, "sale_date", from, to).Find(&l.sales).Error; err != nil {
			return err
		}
		if err := dated(tx, "income_date", from, to).Find(&l.incomes).Error; err != nil {
			return err
		}
		if err := dated(tx, "expense_date", from, to).Find(&l.expenses).Error; err != nil {
			return err
		}
		if !withStays {
			return nil
		}
		err := tx.Where("status IN ? AND check_in_date < ? AND check_out_date >= ?",
			[]string{constants.BookingStatusCheckedIn, constants.BookingStatusCompleted}, to, from).
			Find(&l.stays).Error
		if err != nil {
			return err
		}
		return tx.Model(&models.Room{}).Count(&l.rooms).Error
	})
	if err != nil {
		return nil, dbError("report", err)
	}
	return l, nil
}

func dated(tx *gorm.DB, column string, from, to time.Time) *gorm.DB {
	q := tx
	if !from.IsZero() {
		q = q.Where(column+" >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where(column+" < ?", to)
	}
	return q.Order(column + " asc")
}

type totals struct {
	roomSales, refunds, incomes, expenses decimal.Decimal
	sales, incomeCount, expenseCount      int
}

func (t *totals) addSale(s models.DailySale) {
	if s.IsRefund() {
		t.refunds = t.refunds.Add(s.Amount)
	} else {
		t.roomSales = t.roomSales.Add(s.Amount)
	}
	t.sales++
}

func (t *totals) addIncome(i models.Income) {
	t.incomes = t.incomes.Add(i.Amount)
	t.incomeCount++
}

func (t *totals) addExpense(e models.Expense) {
	t.expenses = t.expenses.Add(e.Amount)
	t.expenseCount++
}

// revenue = collections - refunds + manual income.
func (t *totals) revenue() decimal.Decimal {
	return t.roomSales.Sub(t.refunds).Add(t.incomes)
}

func (t *totals) profit() decimal.Decimal {
	return t.revenue().Sub(t.expenses)
}

func newTotals() *totals {
	return &totals{roomSales: decimal.Zero, refunds: decimal.Zero, incomes: decimal.Zero, expenses: decimal.Zero}
}

func buildDailyReports(l *ledger, from, to time.Time) []types.DailyReport {
	days := make(map[string]*totals)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days[utils.FormatDate(d)] = newTotals()
	}
	for _, sale := range l.sales {
		if t, ok := days[utils.FormatDate(sale.SaleDate)]; ok {
			t.addSale(sale)
		}
	}
	for _, inc := range l.incomes {
		if t, ok := days[utils.FormatDate(inc.IncomeDate)]; ok {
			t.addIncome(inc)
		}
	}
	for _, exp := range l.expenses {
		if t, ok := days[utils.FormatDate(exp.ExpenseDate)]; ok {
			t.addExpense(exp)
		}
	}

	reports := make([]types.DailyReport, 0, len(days))
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		date := utils.FormatDate(d)
		t := days[date]
		reports = append(reports, types.DailyReport{
			Date:          date,
			RoomSales:     t.roomSales,
			Refunds:       t.refunds,
			Incomes:       t.incomes,
			Revenue:       t.revenue(),
			Expenses:      t.expenses,
			Profit:        t.profit(),
			BookingsCount: t.sales,
			IncomesCount:  t.incomeCount,
			ExpensesCount: t.expenseCount,
		})
	}
	return reports
}

func buildMonthlyReport(l *ledger, year int, month time.Month) types.MonthlyReport {
	start := utils.MonthStart(year, month)
	end := start.AddDate(0, 1, 0)
	in := func(d time.Time) bool { return !d.Before(start) && d.Before(end) }

	t := newTotals()
	for _, sale := range l.sales {
		if in(sale.SaleDate) {
			t.addSale(sale)
		}
	}
	for _, inc := range l.incomes {
		if in(inc.IncomeDate) {
			t.addIncome(inc)
		}
	}
	for _, exp := range l.expenses {
		if in(exp.ExpenseDate) {
			t.addExpense(exp)
		}
	}

	occupied := OccupiedNights(l.stays, start, end)
	available := int(l.rooms) * utils.DaysIn(year, month)
	return types.MonthlyReport{
		Year:            year,
		Month:           int(month),
		MonthName:       month.String(),
		RoomSales:       t.roomSales,
		Refunds:         t.refunds,
		Incomes:         t.incomes,
		Revenue:         t.revenue(),
		Expenses:        t.expenses,
		Profit:          t.profit(),
		BookingsCount:   t.sales,
		IncomesCount:    t.incomeCount,
		ExpensesCount:   t.expenseCount,
		OccupiedNights:  occupied,
		AvailableNights: available,
		OccupancyRate:   OccupancyRate(occupied, available),
	}
}

// OccupiedNights counts the room-nights of stays that fall in [start, end).
// A Short Time stay counts as one night.
func OccupiedNights(stays []models.Booking, start, end time.Time) int {
	nights := 0
	for _, b := range stays {
		if b.Status != constants.BookingStatusCheckedIn && b.Status != constants.BookingStatusCompleted {
			continue
		}
		from, to := models.ReservationSpan(b.StayType, b.CheckInDate, b.CheckOutDate)
		if from.Before(start) {
			from = start
		}
		if to.After(end) {
			to = end
		}
		nights += utils.NightsBetween(from, to)
	}
	return nights
}

// OccupancyRate is occupied / available * 100 to two places; zero when nothing was available.
func OccupancyRate(occupied, available int) decimal.Decimal {
	if available <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(occupied)).Mul(hundred).Div(decimal.NewFromInt(int64(available))).Round(2)
}

func buildFinancialSummary(l *ledger, currency string) types.FinancialSummary {
	t := newTotals()
	methods := make(map[string]decimal.Decimal)
	revenue := make(map[string]decimal.Decimal)
	spent := make(map[string]decimal.Decimal)

	for _, sale := range l.sales {
		t.addSale(sale)
		methods[sale.PaymentMethod] = methods[sale.PaymentMethod].Add(sale.Net())
	}
	for _, inc := range l.incomes {
		t.addIncome(inc)
		revenue[inc.Category] = revenue[inc.Category].Add(inc.Amount)
	}
	for _, exp := range l.expenses {
		t.addExpense(exp)
		spent[exp.Category] = spent[exp.Category].Add(exp.Amount)
	}
	revenue["Room Sales"] = revenue["Room Sales"].Add(t.roomSales.Sub(t.refunds))

	return types.FinancialSummary{
		Currency:         currency,
		RoomSales:        t.roomSales,
		Refunds:          t.refunds,
		Incomes:          t.incomes,
		TotalRevenue:     t.revenue(),
		TotalExpenses:    t.expenses,
		NetProfit:        t.profit(),
		PaymentMethods:   methods,
		RevenueBreakdown: revenue,
		ExpenseBreakdown: spent,
	}
}
