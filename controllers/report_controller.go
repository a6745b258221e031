package controllers

import (
	"frontdesk/dto"
	"frontdesk/response"
	"frontdesk/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(reports *services.ReportService) ReportController {
	return ReportController{Reports: reports}
}

// GetDailyReports godoc
// @Summary Daily financial reports for a date range
// @Tags reports
// @Param start_date query string true "YYYY-MM-DD"
// @Param end_date query string true "YYYY-MM-DD"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /reports/daily [get]
func (rc ReportController) GetDailyReports(c *gin.Context) {
	reports, err := rc.Reports.DailyReports(c.Request.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, reports)
}

// GetMonthlyReports godoc
// @Summary Monthly financial reports with occupancy
// @Tags reports
// @Param year query int false "year, defaults to the current year"
// @Success 200 {object} response.Response
// @Router /reports/monthly [get]
func (rc ReportController) GetMonthlyReports(c *gin.Context) {
	var q dto.MonthlyReportQuery
	if !bindQuery(c, &q) {
		return
	}
	reports, err := rc.Reports.MonthlyReports(c.Request.Context(), q.Year)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, reports)
}

func (rc ReportController) GetComparison(c *gin.Context) {
	comparison, err := rc.Reports.MonthComparison(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, comparison)
}

func (rc ReportController) GetFinancialSummary(c *gin.Context) {
	var dr dto.DateRange
	if !bindQuery(c, &dr) {
		return
	}
	summary, err := rc.Reports.FinancialSummary(c.Request.Context(), dr)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, summary)
}
