package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-desk/services"
	"hotel-desk/utils"
)

type GuestController struct {
	Store *services.HotelService
}

func NewGuestController(store *services.HotelService) *GuestController {
	return &GuestController{Store: store}
}

// GET /api/guests
func (gc *GuestController) GetGuests(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gc.Store.Guests())
}

// GET /api/guests/:name
func (gc *GuestController) GetGuest(c *gin.Context) {
	guest, err := gc.Store.Guest(c.Param("name"))
	if err != nil {
		respondStoreError(c, err, nil)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

// GET /api/guests/:name/bookings
func (gc *GuestController) GetGuestBookings(c *gin.Context) {
	bookings, err := gc.Store.GuestBookings(c.Param("name"))
	if err != nil {
		respondStoreError(c, err, nil)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}
