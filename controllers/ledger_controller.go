package controllers

import (
	"frontdesk/dto"
	"frontdesk/response"
	"frontdesk/services"

	"github.com/gin-gonic/gin"
)

type LedgerController struct {
	Ledger *services.LedgerService
}

func NewLedgerController(ledger *services.LedgerService) LedgerController {
	return LedgerController{Ledger: ledger}
}

// GetExpenses godoc
// @Summary List expenses
// @Tags ledger
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Param category query string false "category"
// @Success 200 {object} response.Response
// @Router /expenses [get]
func (lc LedgerController) GetExpenses(c *gin.Context) {
	var filter dto.LedgerFilter
	if !bindQuery(c, &filter) {
		return
	}
	expenses, err := lc.Ledger.ListExpenses(c.Request.Context(), filter)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, expenses)
}

func (lc LedgerController) CreateExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if !bindJSON(c, &req) {
		return
	}
	expense, err := lc.Ledger.RecordExpense(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, expense)
}

func (lc LedgerController) DeleteExpense(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := lc.Ledger.DeleteExpense(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"id": id})
}

func (lc LedgerController) GetIncomes(c *gin.Context) {
	var filter dto.LedgerFilter
	if !bindQuery(c, &filter) {
		return
	}
	incomes, err := lc.Ledger.ListIncomes(c.Request.Context(), filter)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, incomes)
}

func (lc LedgerController) CreateIncome(c *gin.Context) {
	var req dto.CreateIncomeRequest
	if !bindJSON(c, &req) {
		return
	}
	income, err := lc.Ledger.RecordIncome(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, income)
}

func (lc LedgerController) DeleteIncome(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := lc.Ledger.DeleteIncome(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"id": id})
}

// GetDailySales lists the room-sale entries produced at checkout.
func (lc LedgerController) GetDailySales(c *gin.Context) {
	var dr dto.DateRange
	if !bindQuery(c, &dr) {
		return
	}
	sales, err := lc.Ledger.ListRoomSales(c.Request.Context(), dr)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, sales)
}
