package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medibookhq/medibook-api/internal/domain/schedule"
	"github.com/medibookhq/medibook-api/internal/httperr"
	"github.com/medibookhq/medibook-api/internal/httpresp"
	"github.com/medibookhq/medibook-api/internal/middleware"
	"github.com/medibookhq/medibook-api/internal/models"
	"github.com/medibookhq/medibook-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type PatientHandler struct {
	repo       schedule.Repository
	create     *booking.CreateAppointment
	reschedule *booking.RescheduleAppointment
	cancel     *booking.CancelAppointment
	listSlots  *booking.ListSlots
}

func NewPatientHandler(
	repo schedule.Repository,
	create *booking.CreateAppointment,
	reschedule *booking.RescheduleAppointment,
	cancel *booking.CancelAppointment,
	listSlots *booking.ListSlots,
) *PatientHandler {
	return &PatientHandler{
		repo:       repo,
		create:     create,
		reschedule: reschedule,
		cancel:     cancel,
		listSlots:  listSlots,
	}
}

func sessionFromContext(c *gin.Context) booking.Session {
	userID, _ := c.MustGet(middleware.ContextUserID).(string)
	role, _ := c.MustGet(middleware.ContextUserRole).(string)
	return booking.Session{UserID: userID, Role: role}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	DoctorID   string    `json:"doctor_id" binding:"required"`
	Department string    `json:"department"`
	DateTime   time.Time `json:"date_time" binding:"required"`
}

type RescheduleRequest struct {
	DateTime time.Time `json:"date_time" binding:"required"`
}

// ======================================================
// BOOK
// ======================================================

func (h *PatientHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), sessionFromContext(c), booking.CreateAppointmentInput{
		DoctorID:   req.DoctorID,
		Department: req.Department,
		DateTime:   req.DateTime,
	})
	if err != nil {
		writeBookingError(c, err, "booking_failed", "Could not create appointment. Please try again.")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST (upcoming / past split for the dashboard)
// ======================================================

func (h *PatientHandler) ListAppointments(c *gin.Context) {
	sess := sessionFromContext(c)

	apps, err := h.repo.ListAppointmentsForPatient(c.Request.Context(), sess.UserID)
	if err != nil {
		httperr.Internal(c, "appointments_list_failed", "Could not load appointments.")
		return
	}

	now := time.Now()
	upcoming := []models.Appointment{}
	past := []models.Appointment{}

	for _, ap := range apps {
		if ap.Status == string(schedule.StatusScheduled) && !ap.DateTime.Before(now) {
			upcoming = append(upcoming, ap)
		} else {
			past = append(past, ap)
		}
	}

	c.JSON(200, gin.H{
		"upcoming": upcoming,
		"past":     past,
	})
}

// ======================================================
// RESCHEDULE
// ======================================================

// ListRescheduleSlots regenerates the doctor's slots with this appointment
// excluded from the collision set, so its current hour shows as free.
func (h *PatientHandler) ListRescheduleSlots(c *gin.Context) {
	sess := sessionFromContext(c)
	appointmentID := c.Param("id")

	ap, err := h.repo.GetAppointmentForPatient(c.Request.Context(), appointmentID, sess.UserID)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	slots, err := h.listSlots.Execute(c.Request.Context(), ap.DoctorID, ap.ID, time.Now())
	if err != nil {
		writeBookingError(c, err, "slots_failed", "Could not load time slots.")
		return
	}

	httpresp.List(c, slots)
}

func (h *PatientHandler) Reschedule(c *gin.Context) {
	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid reschedule data.")
		return
	}

	ap, err := h.reschedule.Execute(
		c.Request.Context(),
		sessionFromContext(c),
		c.Param("id"),
		req.DateTime,
	)
	if err != nil {
		writeBookingError(c, err, "reschedule_failed", "Could not reschedule appointment. Please try again.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// CANCEL
// ======================================================

func (h *PatientHandler) Cancel(c *gin.Context) {
	ap, err := h.cancel.Execute(
		c.Request.Context(),
		sessionFromContext(c),
		c.Param("id"),
		time.Now(),
	)
	if err != nil {
		writeBookingError(c, err, "cancel_failed", "Could not cancel appointment. Please try again.")
		return
	}

	httpresp.OK(c, ap)
}
