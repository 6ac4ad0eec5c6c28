package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-desk/services"
	"hotel-desk/utils"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

var errorMappings = []errorMapping{
	{services.ErrInvalidRoomNumber, http.StatusNotFound, "error.roomNotFound", "Room not found"},
	{services.ErrGuestNotFound, http.StatusNotFound, "error.guestNotFound", "Guest not found"},
	{services.ErrInvalidDates, http.StatusBadRequest, "error.invalidDates", "Check-in must be before check-out"},
	{services.ErrInvalidRoom, http.StatusBadRequest, "error.invalidRoom", "Invalid room"},
	{services.ErrInvalidStatus, http.StatusBadRequest, "error.invalidStatus", "Only Vacant or UnderMaintenance can be set"},
	{services.ErrRoomUnavailable, http.StatusConflict, "error.roomUnavailable", "Room is not available"},
	{services.ErrRoomNotOccupied, http.StatusConflict, "error.roomNotOccupied", "Room is not occupied"},
	{services.ErrNoActiveBooking, http.StatusConflict, "error.noActiveBooking", "No active booking for this room"},
	{services.ErrDuplicateRoom, http.StatusConflict, "error.duplicateRoom", "Room number already exists"},
}

// respondStoreError writes the error body for a failed store call. A
// persistence failure still carries data, since the change was applied.
func respondStoreError(c *gin.Context, err error, data interface{}) {
	if errors.Is(err, services.ErrPersist) {
		log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.JSONWarning(c, http.StatusInternalServerError, data,
			"error.persistFailed", "Change applied but could not be saved", err.Error())
		return
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			utils.JSONErrorDetails(c, m.status, m.code, m.message, err.Error())
			return
		}
	}
	log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	utils.JSONErrorDetails(c, http.StatusInternalServerError, "error.internal", "Internal error", err.Error())
}

func respondInvalidPayload(c *gin.Context, err error) {
	log.Printf("❌ JSON BINDING ERROR (400): %v", err)
	utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "Invalid request payload", err.Error())
}
