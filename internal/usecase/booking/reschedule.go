package booking

import (
	"context"
	"time"

	"github.com/medibookhq/medibook-api/internal/audit"
	"github.com/medibookhq/medibook-api/internal/cache"
	"github.com/medibookhq/medibook-api/internal/domain/schedule"
	"github.com/medibookhq/medibook-api/internal/httperr"
	"github.com/medibookhq/medibook-api/internal/metrics"
	"github.com/medibookhq/medibook-api/internal/models"
	"github.com/medibookhq/medibook-api/internal/notification"
)

type RescheduleAppointment struct {
	repo     schedule.Repository
	notifier Notifier
	auditor  Auditor
	cache    *cache.SlotCache
}

func NewRescheduleAppointment(
	repo schedule.Repository,
	notifier Notifier,
	auditor Auditor,
	slotCache *cache.SlotCache,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:     repo,
		notifier: notifier,
		auditor:  auditor,
		cache:    slotCache,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	sess Session,
	appointmentID string,
	newDateTime time.Time,
) (*models.Appointment, error) {

	if !sess.Authenticated() {
		return nil, httperr.ErrBusiness("authentication_required")
	}

	ap, err := uc.repo.GetAppointmentForPatient(ctx, appointmentID, sess.UserID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := schedule.Reschedule(ap, newDateTime); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			metrics.BookingConflicts.Inc()
		}
		return nil, err
	}

	metrics.ReschedulesTotal.Inc()
	uc.cache.Invalidate(ctx, ap.DoctorID)

	uc.notifier.Dispatch(notification.Event{
		Kind:          notification.KindConfirmation,
		AppointmentID: ap.ID,
	})

	uc.auditor.Dispatch(audit.Event{
		ActorID:  &ap.PatientID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
