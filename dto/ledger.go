package dto

import "github.com/shopspring/decimal"

type CreateExpenseRequest struct {
	Description string          `json:"description" binding:"required,max=255"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category" binding:"required,max=50"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	CreatedBy   string          `json:"createdBy" binding:"omitempty,max=50"`
}

type CreateIncomeRequest struct {
	Description string          `json:"description" binding:"required,max=255"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category" binding:"required,max=50"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	CreatedBy   string          `json:"createdBy" binding:"omitempty,max=50"`
}

type LedgerFilter struct {
	DateRange
	Category string `form:"category"`
}

type MonthlyReportQuery struct {
	Year int `form:"year" binding:"omitempty,min=2000,max=2100"`
}
