package types

import "github.com/shopspring/decimal"

// DailyReport rolls up one calendar day of the ledger.
type DailyReport struct {
	Date          string          `json:"date"`
	RoomSales     decimal.Decimal `json:"roomSales"`
	Refunds       decimal.Decimal `json:"refunds"`
	Incomes       decimal.Decimal `json:"incomes"`
	Revenue       decimal.Decimal `json:"revenue"`
	Expenses      decimal.Decimal `json:"expenses"`
	Profit        decimal.Decimal `json:"profit"`
	BookingsCount int             `json:"bookingsCount"`
	IncomesCount  int             `json:"incomesCount"`
	ExpensesCount int             `json:"expensesCount"`
}

type MonthlyReport struct {
	Year            int             `json:"year"`
	Month           int             `json:"month"`
	MonthName       string          `json:"monthName"`
	RoomSales       decimal.Decimal `json:"roomSales"`
	Refunds         decimal.Decimal `json:"refunds"`
	Incomes         decimal.Decimal `json:"incomes"`
	Revenue         decimal.Decimal `json:"revenue"`
	Expenses        decimal.Decimal `json:"expenses"`
	Profit          decimal.Decimal `json:"profit"`
	BookingsCount   int             `json:"bookingsCount"`
	IncomesCount    int             `json:"incomesCount"`
	ExpensesCount   int             `json:"expensesCount"`
	OccupiedNights  int             `json:"occupiedNights"`
	AvailableNights int             `json:"availableNights"`
	OccupancyRate   decimal.Decimal `json:"occupancyRate"`
}

// ComparisonChanges holds percentage deltas, current against previous.
type ComparisonChanges struct {
	Revenue       decimal.Decimal `json:"revenue"`
	Expenses      decimal.Decimal `json:"expenses"`
	Profit        decimal.Decimal `json:"profit"`
	BookingsCount decimal.Decimal `json:"bookingsCount"`
}

type MonthComparison struct {
	Current  MonthlyReport     `json:"currentMonth"`
	Previous MonthlyReport     `json:"previousMonth"`
	Changes  ComparisonChanges `json:"changes"`
}

type FinancialSummary struct {
	StartDate        string                     `json:"startDate,omitempty"`
	EndDate          string                     `json:"endDate,omitempty"`
	Currency         string                     `json:"currency"`
	RoomSales        decimal.Decimal            `json:"roomSales"`
	Refunds          decimal.Decimal            `json:"refunds"`
	Incomes          decimal.Decimal            `json:"incomes"`
	TotalRevenue     decimal.Decimal            `json:"totalRevenue"`
	TotalExpenses    decimal.Decimal            `json:"totalExpenses"`
	NetProfit        decimal.Decimal            `json:"netProfit"`
	PaymentMethods   map[string]decimal.Decimal `json:"paymentMethods"`
	RevenueBreakdown map[string]decimal.Decimal `json:"revenueBreakdown"`
	ExpenseBreakdown map[string]decimal.Decimal `json:"expenseBreakdown"`
}
