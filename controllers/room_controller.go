package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-desk/models"
	"hotel-desk/services"
	"hotel-desk/utils"
)

type RoomController struct {
	Store *services.HotelService
}

func NewRoomController(store *services.HotelService) *RoomController {
	return &RoomController{Store: store}
}

type createRoomPayload struct {
	RoomNumber    *int     `json:"roomNumber" binding:"required"`
	Category      string   `json:"category" binding:"required"`
	PricePerNight *float64 `json:"pricePerNight" binding:"required"`
}

type roomStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

// roomNumberParam reads :number; on failure it has already responded.
func roomNumberParam(c *gin.Context) (int, bool) {
	raw := c.Param("number")
	n, err := strconv.Atoi(raw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidRoomNumber", "Room number must be an integer")
		return 0, false
	}
	return n, true
}

// GET /api/rooms
func (rc *RoomController) GetRooms(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.Store.Rooms())
}

// GET /api/rooms/:number
func (rc *RoomController) GetRoom(c *gin.Context) {
	number, ok := roomNumberParam(c)
	if !ok {
		return
	}
	room, err := rc.Store.Room(number)
	if err != nil {
		respondStoreError(c, err, nil)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// POST /api/rooms
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var payload createRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	category, err := models.ParseCategory(payload.Category)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidCategory", "Unknown room category", err.Error())
		return
	}

	room, err := rc.Store.AddRoom(c.Request.Context(), *payload.RoomNumber, category, *payload.PricePerNight)
	if err != nil {
		respondStoreError(c, err, room)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// PATCH /api/rooms/:number/status
func (rc *RoomController) UpdateRoomStatus(c *gin.Context) {
	number, ok := roomNumberParam(c)
	if !ok {
		return
	}
	var payload roomStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	status, err := models.ParseRoomStatus(payload.Status)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidStatus", "Unknown room status", err.Error())
		return
	}

	room, err := rc.Store.SetRoomStatus(c.Request.Context(), number, status)
	if err != nil {
		respondStoreError(c, err, room)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}
