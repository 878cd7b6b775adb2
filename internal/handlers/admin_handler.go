package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/medibookhq/medibook-api/internal/audit"
	"github.com/medibookhq/medibook-api/internal/cache"
	"github.com/medibookhq/medibook-api/internal/domain/schedule"
	"github.com/medibookhq/medibook-api/internal/httperr"
	"github.com/medibookhq/medibook-api/internal/httpresp"
	"github.com/medibookhq/medibook-api/internal/middleware"
	"github.com/medibookhq/medibook-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache *cache.SlotCache
}

func NewAdminHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher, slotCache *cache.SlotCache) *AdminHandler {
	return &AdminHandler{db: db, audit: auditDispatcher, cache: slotCache}
}

// ======================================================
// USERS
// ======================================================

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var profiles []models.Profile
	if err := h.db.
		Order("created_at DESC").
		Find(&profiles).Error; err != nil {

		httperr.Internal(c, "users_list_failed", "Could not load users.")
		return
	}

	httpresp.List(c, profiles)
}

// ======================================================
// DOCTORS
// ======================================================

type DoctorApprovalRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

func (h *AdminHandler) ListDoctors(c *gin.Context) {
	var doctors []models.Doctor
	if err := h.db.
		Order("created_at DESC").
		Find(&doctors).Error; err != nil {

		httperr.Internal(c, "doctors_list_failed", "Could not load doctors.")
		return
	}

	httpresp.List(c, doctors)
}

func (h *AdminHandler) SetDoctorApproval(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(string)
	doctorID := c.Param("id")

	var req DoctorApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid approval data.")
		return
	}

	var doctor models.Doctor
	if err := h.db.Where("id = ?", doctorID).First(&doctor).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	doctor.IsApproved = *req.Approved
	if err := h.db.Save(&doctor).Error; err != nil {
		httperr.Internal(c, "approval_failed", "Could not update doctor approval.")
		return
	}

	// Revoked doctors disappear from booking immediately.
	h.cache.Invalidate(c.Request.Context(), doctor.ID)

	action := "doctor_approved"
	if !doctor.IsApproved {
		action = "doctor_approval_revoked"
	}
	h.audit.Dispatch(audit.Event{
		ActorID:  &adminID,
		Action:   action,
		Entity:   "doctor",
		EntityID: &doctor.ID,
	})

	httpresp.OK(c, doctor)
}

// ======================================================
// STATS
// ======================================================

func (h *AdminHandler) GetStats(c *gin.Context) {
	var (
		totalUsers     int64
		totalDoctors   int64
		pendingDoctors int64
		totalApps      int64
		scheduled      int64
		completed      int64
		cancelled      int64
	)

	h.db.Model(&models.Profile{}).Count(&totalUsers)
	h.db.Model(&models.Doctor{}).Count(&totalDoctors)
	h.db.Model(&models.Doctor{}).Where("is_approved = ?", false).Count(&pendingDoctors)
	h.db.Model(&models.Appointment{}).Count(&totalApps)
	h.db.Model(&models.Appointment{}).Where("status = ?", string(schedule.StatusScheduled)).Count(&scheduled)
	h.db.Model(&models.Appointment{}).Where("status = ?", string(schedule.StatusCompleted)).Count(&completed)
	h.db.Model(&models.Appointment{}).Where("status = ?", string(schedule.StatusCancelled)).Count(&cancelled)

	c.JSON(200, gin.H{
		"total_users":            totalUsers,
		"total_doctors":          totalDoctors,
		"pending_doctors":        pendingDoctors,
		"total_appointments":     totalApps,
		"scheduled_appointments": scheduled,
		"completed_appointments": completed,
		"cancelled_appointments": cancelled,
	})
}

// ======================================================
// AUDIT LOGS
// ======================================================

func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "50")

	page, _ := strconv.Atoi(pageStr)
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.Model(&models.AuditLog{})

	if action != "" {
		q = q.Where("action = ?", action)
	}

	if entity != "" {
		q = q.Where("entity = ?", entity)
	}

	if fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("created_at <= ?", to.Add(24*time.Hour))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Could not count audit logs.")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", "Could not load audit logs.")
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
