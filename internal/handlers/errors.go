package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/medibookhq/medibook-api/internal/httperr"
)

// writeBookingError maps use case errors onto HTTP responses. Anything that
// is not a known business code collapses to a generic failure so persistence
// details never leak to the client.
func writeBookingError(c *gin.Context, err error, fallbackCode string, fallbackMessage string) {
	switch httperr.BusinessCode(err) {
	case "authentication_required":
		httperr.Unauthorized(c, "authentication_required", "Please sign in first.")
	case "appointment_not_found":
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
	case "doctor_not_found":
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
	case "doctor_not_approved":
		httperr.BadRequest(c, "doctor_not_approved", "Doctor is not accepting appointments.")
	case "slot_taken":
		httperr.Conflict(c, "slot_taken", "That time slot has just been booked. Please pick another.")
	case "invalid_state":
		httperr.BadRequest(c, "invalid_state", "The appointment can no longer be changed.")
	case "invalid_status":
		httperr.BadRequest(c, "invalid_status", "Unknown appointment status.")
	default:
		httperr.Internal(c, fallbackCode, fallbackMessage)
	}
}
