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

type CancelAppointment struct {
	repo     schedule.Repository
	notifier Notifier
	auditor  Auditor
	cache    *cache.SlotCache
}

func NewCancelAppointment(
	repo schedule.Repository,
	notifier Notifier,
	auditor Auditor,
	slotCache *cache.SlotCache,
) *CancelAppointment {
	return &CancelAppointment{
		repo:     repo,
		notifier: notifier,
		auditor:  auditor,
		cache:    slotCache,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	sess Session,
	appointmentID string,
	now time.Time,
) (*models.Appointment, error) {

	if !sess.Authenticated() {
		return nil, httperr.ErrBusiness("authentication_required")
	}

	ap, err := uc.repo.GetAppointmentForPatient(ctx, appointmentID, sess.UserID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := schedule.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	metrics.CancellationsTotal.Inc()
	uc.cache.Invalidate(ctx, ap.DoctorID)

	uc.notifier.Dispatch(notification.Event{
		Kind:          notification.KindCancellation,
		AppointmentID: ap.ID,
	})

	uc.auditor.Dispatch(audit.Event{
		ActorID:  &ap.PatientID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
