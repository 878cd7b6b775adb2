package booking

import (
	"context"
	"time"

	"github.com/medibookhq/medibook-api/internal/cache"
	"github.com/medibookhq/medibook-api/internal/domain/schedule"
	"github.com/medibookhq/medibook-api/internal/httperr"
	"github.com/medibookhq/medibook-api/internal/metrics"
)

type ListSlots struct {
	repo  schedule.Repository
	cache *cache.SlotCache
}

func NewListSlots(repo schedule.Repository, slotCache *cache.SlotCache) *ListSlots {
	return &ListSlots{repo: repo, cache: slotCache}
}

// Execute regenerates the doctor's bookable slots for the rolling 7-day
// window. excludeAppointmentID drops one appointment from the collision set
// so a patient rescheduling it can reselect its current hour.
func (uc *ListSlots) Execute(
	ctx context.Context,
	doctorID string,
	excludeAppointmentID string,
	now time.Time,
) ([]schedule.Slot, error) {

	doctor, err := uc.repo.GetDoctorByID(ctx, doctorID)
	if err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}
	if !doctor.IsApproved {
		return nil, httperr.ErrBusiness("doctor_not_approved")
	}

	// Cached pages are shared per doctor, so only the plain listing may use
	// them; the self-excluded reschedule view must always regenerate.
	if excludeAppointmentID == "" {
		if slots, ok := uc.cache.Get(ctx, doctorID); ok {
			metrics.SlotCacheHits.Inc()
			return slots, nil
		}
	}

	rules, err := uc.repo.ListAvailabilityRules(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, schedule.WindowDays()+1)

	booked, err := uc.repo.ListScheduledTimes(ctx, doctorID, from, to, excludeAppointmentID)
	if err != nil {
		return nil, err
	}

	slots := schedule.GenerateSlots(rules, booked, now)

	if excludeAppointmentID == "" {
		uc.cache.Set(ctx, doctorID, slots)
	}

	return slots, nil
}
