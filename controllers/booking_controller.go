package controllers

import (
	"frontdesk/dto"
	"frontdesk/response"
	"frontdesk/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) BookingController {
	return BookingController{Bookings: bookings}
}

// GetBookings godoc
// @Summary List bookings
// @Tags bookings
// @Param status query string false "booking status"
// @Param room_number query string false "room number"
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Success 200 {object} response.Response
// @Router /bookings [get]
func (bc BookingController) GetBookings(c *gin.Context) {
	var filter dto.BookingFilter
	if !bindQuery(c, &filter) {
		return
	}
	bookings, total, err := bc.Bookings.List(c.Request.Context(), filter)
	if err != nil {
		response.FromError(c, err)
		return
	}
	filter.Normalize()
	response.SuccessWithPagination(c, bookings, filter.Page, filter.Limit, int(total))
}

func (bc BookingController) GetUpcoming(c *gin.Context) {
	bookings, err := bc.Bookings.ListUpcoming(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, bookings)
}

func (bc BookingController) GetCheckedIn(c *gin.Context) {
	bookings, err := bc.Bookings.ListCheckedIn(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, bookings)
}

func (bc BookingController) GetBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	booking, err := bc.Bookings.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, booking)
}

// CreateBooking godoc
// @Summary Create an upcoming booking
// @Tags bookings
// @Accept json
// @Param booking body dto.CreateBookingRequest true "booking"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings [post]
func (bc BookingController) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	booking, err := bc.Bookings.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, booking)
}

func (bc BookingController) EditBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.EditBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	booking, err := bc.Bookings.Edit(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, booking)
}

// CheckIn godoc
// @Summary Check a guest in
// @Tags bookings
// @Accept json
// @Param id path int true "booking id"
// @Param body body dto.CheckInRequest true "advance and notes"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings/{id}/checkin [post]
func (bc BookingController) CheckIn(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CheckInRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}
	booking, err := bc.Bookings.CheckIn(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, booking)
}

// Checkout godoc
// @Summary Check a guest out and settle the bill
// @Tags bookings
// @Accept json
// @Param id path int true "booking id"
// @Param body body dto.CheckoutRequest true "billing"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings/{id}/checkout [post]
func (bc BookingController) Checkout(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CheckoutRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := bc.Bookings.Checkout(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, result)
}

func (bc BookingController) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	booking, err := bc.Bookings.Cancel(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, booking)
}
