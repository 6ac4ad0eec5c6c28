package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-desk/services"
	"hotel-desk/utils"
)

type BookingController struct {
	Store *services.HotelService
}

func NewBookingController(store *services.HotelService) *BookingController {
	return &BookingController{Store: store}
}

type createBookingPayload struct {
	GuestName   string `json:"guestName" binding:"required"`
	ContactInfo string `json:"contactInfo"`
	RoomNumber  *int   `json:"roomNumber" binding:"required"`
	CheckIn     string `json:"checkIn" binding:"required"`
	CheckOut    string `json:"checkOut" binding:"required"`
}

// GET /api/bookings
func (bc *BookingController) GetBookings(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, bc.Store.Bookings())
}

// POST /api/bookings
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	checkIn, err := utils.ParseDate(payload.CheckIn)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidDate", "checkIn must be YYYY-MM-DD", err.Error())
		return
	}
	checkOut, err := utils.ParseDate(payload.CheckOut)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidDate", "checkOut must be YYYY-MM-DD", err.Error())
		return
	}

	// a missing room is a 404, not "unavailable"
	if err := bc.Store.ValidateRoomNumber(*payload.RoomNumber); err != nil {
		respondStoreError(c, err, nil)
		return
	}

	booking, err := bc.Store.BookRoom(c.Request.Context(),
		payload.GuestName, payload.ContactInfo, *payload.RoomNumber, checkIn, checkOut)
	if err != nil {
		respondStoreError(c, err, booking)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// POST /api/rooms/:number/checkout
func (bc *BookingController) CheckoutRoom(c *gin.Context) {
	number, ok := roomNumberParam(c)
	if !ok {
		return
	}
	if err := bc.Store.ValidateRoomNumber(number); err != nil {
		respondStoreError(c, err, nil)
		return
	}

	out, err := bc.Store.CheckOut(c.Request.Context(), number)
	if err != nil {
		respondStoreError(c, err, out)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}
