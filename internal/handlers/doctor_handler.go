package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

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

type DoctorHandler struct {
	db     *gorm.DB
	repo   schedule.Repository
	update *booking.UpdateAppointmentByDoctor
}

func NewDoctorHandler(
	db *gorm.DB,
	repo schedule.Repository,
	update *booking.UpdateAppointmentByDoctor,
) *DoctorHandler {
	return &DoctorHandler{db: db, repo: repo, update: update}
}

func (h *DoctorHandler) currentDoctor(c *gin.Context) (*models.Doctor, bool) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	doctor, err := h.repo.GetDoctorForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.NotFound(c, "doctor_profile_not_found", "No doctor profile for this account.")
		return nil, false
	}
	return doctor, true
}

// ======================================================
// PROFILE
// ======================================================

type UpdateDoctorProfileRequest struct {
	Specialty  *string `json:"specialty"`
	Department *string `json:"department"`
	Bio        *string `json:"bio"`
}

func (h *DoctorHandler) GetProfile(c *gin.Context) {
	doctor, ok := h.currentDoctor(c)
	if !ok {
		return
	}

	httpresp.OK(c, doctor)
}

func (h *DoctorHandler) UpdateProfile(c *gin.Context) {
	doctor, ok := h.currentDoctor(c)
	if !ok {
		return
	}

	var req UpdateDoctorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid profile data.")
		return
	}

	if req.Specialty != nil {
		doctor.Specialty = *req.Specialty
	}
	if req.Department != nil {
		doctor.Department = *req.Department
	}
	if req.Bio != nil {
		doctor.Bio = *req.Bio
	}

	if err := h.db.Save(doctor).Error; err != nil {
		httperr.Internal(c, "profile_update_failed", "Could not save profile.")
		return
	}

	httpresp.OK(c, doctor)
}

// ======================================================
// APPOINTMENTS
// ======================================================

type UpdateAppointmentRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

func (h *DoctorHandler) ListAppointments(c *gin.Context) {
	doctor, ok := h.currentDoctor(c)
	if !ok {
		return
	}

	apps, err := h.repo.ListAppointmentsForDoctor(c.Request.Context(), doctor.ID)
	if err != nil {
		httperr.Internal(c, "appointments_list_failed", "Could not load appointments.")
		return
	}

	httpresp.List(c, apps)
}

func (h *DoctorHandler) UpdateAppointment(c *gin.Context) {
	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment data.")
		return
	}

	if req.Status == nil && req.Notes == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing_to_update"})
		return
	}

	ap, err := h.update.Execute(
		c.Request.Context(),
		sessionFromContext(c),
		booking.UpdateByDoctorInput{
			AppointmentID: c.Param("id"),
			Status:        req.Status,
			Notes:         req.Notes,
		},
		time.Now(),
	)
	if err != nil {
		writeBookingError(c, err, "appointment_update_failed", "Could not update appointment.")
		return
	}

	httpresp.OK(c, ap)
}
