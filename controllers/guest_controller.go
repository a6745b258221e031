package controllers

import (
	"frontdesk/response"
	"frontdesk/services"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	Guests *services.GuestService
}

func NewGuestController(guests *services.GuestService) GuestController {
	return GuestController{Guests: guests}
}

// GetGuests godoc
// @Summary Guest directory derived from bookings
// @Tags guests
// @Param q query string false "fuzzy name search"
// @Success 200 {object} response.Response
// @Router /guests [get]
func (gc GuestController) GetGuests(c *gin.Context) {
	var (
		guests interface{}
		err    error
	)
	if q := c.Query("q"); q != "" {
		guests, err = gc.Guests.Search(c.Request.Context(), q)
	} else {
		guests, err = gc.Guests.List(c.Request.Context())
	}
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, guests)
}

func (gc GuestController) GetGuest(c *gin.Context) {
	guest, err := gc.Guests.Get(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, guest)
}
