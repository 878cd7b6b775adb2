package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

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

// AvailabilityHandler manages a doctor's recurring weekly template. The save
// is replace-all on purpose: two browser tabs editing at once race and the
// last save wins, which is the documented contract, not an accident.
type AvailabilityHandler struct {
	repo  schedule.Repository
	cache *cache.SlotCache
}

func NewAvailabilityHandler(repo schedule.Repository, slotCache *cache.SlotCache) *AvailabilityHandler {
	return &AvailabilityHandler{repo: repo, cache: slotCache}
}

// ======================================================
// REQUESTS
// ======================================================

type AvailabilityRuleInput struct {
	Day       string `json:"day" binding:"required"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AvailabilityUpdateRequest struct {
	Rules []AvailabilityRuleInput `json:"rules" binding:"required"`
}

var weekdayNames = map[string]bool{
	"Sunday":    true,
	"Monday":    true,
	"Tuesday":   true,
	"Wednesday": true,
	"Thursday":  true,
	"Friday":    true,
	"Saturday":  true,
}

// ======================================================
// GET / PUT
// ======================================================

func (h *AvailabilityHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	doctor, err := h.repo.GetDoctorForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.NotFound(c, "doctor_profile_not_found", "No doctor profile for this account.")
		return
	}

	rules, err := h.repo.ListAvailabilityRules(c.Request.Context(), doctor.ID)
	if err != nil {
		httperr.Internal(c, "availability_get_failed", "Could not load availability.")
		return
	}

	httpresp.List(c, rules)
}

func (h *AvailabilityHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	doctor, err := h.repo.GetDoctorForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.NotFound(c, "doctor_profile_not_found", "No doctor profile for this account.")
		return
	}

	var req AvailabilityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid availability data.")
		return
	}

	// Unknown weekday names can never match a generated day, so reject them
	// here. Time strings are stored as given: rules that do not parse, or
	// whose start is not before their end, simply generate no slots.
	rules := make([]models.AvailabilityRule, 0, len(req.Rules))
	for _, r := range req.Rules {
		if !weekdayNames[r.Day] {
			httperr.BadRequest(c, "invalid_day", "Unknown weekday name: "+r.Day)
			return
		}
		rules = append(rules, models.AvailabilityRule{
			Day:       r.Day,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
		})
	}

	if err := h.repo.ReplaceAvailabilityRules(c.Request.Context(), doctor.ID, rules); err != nil {
		httperr.Internal(c, "availability_save_failed", "Could not save availability.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), doctor.ID)

	c.JSON(200, gin.H{"status": "ok", "saved": len(rules), "saved_at": time.Now()})
}
