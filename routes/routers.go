package routes

import (
	"net/http"

	"frontdesk/controllers"
	_ "frontdesk/docs"
	"frontdesk/services"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Services groups everything the HTTP layer calls into.
type Services struct {
	Rooms    *services.RoomService
	Bookings *services.BookingService
	Guests   *services.GuestService
	Ledger   *services.LedgerService
	Reports  *services.ReportService
}

func SetupRoutes(router *gin.Engine, svc Services, m *melody.Melody) {
	roomController := controllers.NewRoomController(svc.Rooms)
	bookingController := controllers.NewBookingController(svc.Bookings)
	guestController := controllers.NewGuestController(svc.Guests)
	ledgerController := controllers.NewLedgerController(svc.Ledger)
	reportController := controllers.NewReportController(svc.Reports)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if m != nil {
		router.GET("/ws", func(c *gin.Context) {
			m.HandleRequest(c.Writer, c.Request)
		})
	}

	v1 := router.Group("/api/v1")

	v1.GET("/rooms", roomController.GetRooms)
	v1.GET("/rooms/available", roomController.GetAvailableRooms)
	v1.POST("/rooms", roomController.CreateRoom)
	v1.GET("/rooms/:id", roomController.GetRoom)
	v1.PUT("/rooms/:id", roomController.UpdateRoom)
	v1.DELETE("/rooms/:id", roomController.DeleteRoom)

	v1.GET("/bookings", bookingController.GetBookings)
	v1.GET("/bookings/upcoming", bookingController.GetUpcoming)
	v1.GET("/bookings/checked-in", bookingController.GetCheckedIn)
	v1.POST("/bookings", bookingController.CreateBooking)
	v1.GET("/bookings/:id", bookingController.GetBooking)
	v1.PUT("/bookings/:id", bookingController.EditBooking)
	v1.POST("/bookings/:id/checkin", bookingController.CheckIn)
	v1.POST("/bookings/:id/checkout", bookingController.Checkout)
	v1.POST("/bookings/:id/cancel", bookingController.Cancel)

	v1.GET("/guests", guestController.GetGuests)
	v1.GET("/guests/:email", guestController.GetGuest)

	v1.GET("/expenses", ledgerController.GetExpenses)
	v1.POST("/expenses", ledgerController.CreateExpense)
	v1.DELETE("/expenses/:id", ledgerController.DeleteExpense)
	v1.GET("/incomes", ledgerController.GetIncomes)
	v1.POST("/incomes", ledgerController.CreateIncome)
	v1.DELETE("/incomes/:id", ledgerController.DeleteIncome)
	v1.GET("/daily-sales", ledgerController.GetDailySales)

	v1.GET("/reports/daily", reportController.GetDailyReports)
	v1.GET("/reports/monthly", reportController.GetMonthlyReports)
	v1.GET("/reports/comparison", reportController.GetComparison)
	v1.GET("/financial-summary", reportController.GetFinancialSummary)
}
