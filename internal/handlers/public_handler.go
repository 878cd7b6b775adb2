package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/medibookhq/medibook-api/internal/httperr"
	"github.com/medibookhq/medibook-api/internal/httpresp"
	"github.com/medibookhq/medibook-api/internal/models"
	"github.com/medibookhq/medibook-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// PublicHandler serves the unauthenticated browse surface of the booking
// wizard: departments, approved doctors, and a doctor's open slots.
type PublicHandler struct {
	db        *gorm.DB
	listSlots *booking.ListSlots
}

func NewPublicHandler(db *gorm.DB, listSlots *booking.ListSlots) *PublicHandler {
	return &PublicHandler{db: db, listSlots: listSlots}
}

// ======================================================
// DEPARTMENTS
// ======================================================

func (h *PublicHandler) ListDepartments(c *gin.Context) {
	var departments []string
	if err := h.db.
		Model(&models.Doctor{}).
		Where("is_approved = ?", true).
		Distinct().
		Order("department ASC").
		Pluck("department", &departments).Error; err != nil {

		httperr.Internal(c, "departments_list_failed", "Could not load departments.")
		return
	}

	httpresp.List(c, departments)
}

// ======================================================
// DOCTORS
// ======================================================

func (h *PublicHandler) ListDoctorsByDepartment(c *gin.Context) {
	department := c.Param("department")

	var doctors []models.Doctor
	if err := h.db.
		Where("department ILIKE ? AND is_approved = ?", department, true).
		Order("full_name ASC").
		Find(&doctors).Error; err != nil {

		httperr.Internal(c, "doctors_list_failed", "Could not load doctors.")
		return
	}

	httpresp.List(c, doctors)
}

// ======================================================
// SLOTS
// ======================================================

func (h *PublicHandler) ListDoctorSlots(c *gin.Context) {
	doctorID := c.Param("id")

	slots, err := h.listSlots.Execute(c.Request.Context(), doctorID, "", time.Now())
	if err != nil {
		if httperr.IsBusiness(err, "doctor_not_found") {
			httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
			return
		}
		if httperr.IsBusiness(err, "doctor_not_approved") {
			httperr.NotFound(c, "doctor_not_approved", "Doctor is not accepting appointments.")
			return
		}
		httperr.Internal(c, "slots_failed", "Could not load time slots.")
		return
	}

	httpresp.List(c, slots)
}
