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

type UpdateByDoctorInput struct {
	AppointmentID string
	Status        *string
	Notes         *string
}

// UpdateAppointmentByDoctor lets a doctor close out or annotate an
// appointment: mark it completed, cancel it, or attach consultation notes.
type UpdateAppointmentByDoctor struct {
	repo     schedule.Repository
	notifier Notifier
	auditor  Auditor
	cache    *cache.SlotCache
}

func NewUpdateAppointmentByDoctor(
	repo schedule.Repository,
	notifier Notifier,
	auditor Auditor,
	slotCache *cache.SlotCache,
) *UpdateAppointmentByDoctor {
	return &UpdateAppointmentByDoctor{
		repo:     repo,
		notifier: notifier,
		auditor:  auditor,
		cache:    slotCache,
	}
}

func (uc *UpdateAppointmentByDoctor) Execute(
	ctx context.Context,
	sess Session,
	in UpdateByDoctorInput,
	now time.Time,
) (*models.Appointment, error) {

	if !sess.Authenticated() {
		return nil, httperr.ErrBusiness("authentication_required")
	}

	doctor, err := uc.repo.GetDoctorForUser(ctx, sess.UserID)
	if err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	ap, err := uc.repo.GetAppointmentForDoctor(ctx, in.AppointmentID, doctor.ID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	cancelled := false

	if in.Status != nil {
		switch schedule.Status(*in.Status) {
		case schedule.StatusCompleted:
			if err := schedule.Complete(ap, now); err != nil {
				return nil, err
			}
		case schedule.StatusCancelled:
			if err := schedule.Cancel(ap, now); err != nil {
				return nil, err
			}
			cancelled = true
		default:
			return nil, httperr.ErrBusiness("invalid_status")
		}
	}

	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if cancelled {
		metrics.CancellationsTotal.Inc()
		uc.cache.Invalidate(ctx, ap.DoctorID)
		uc.notifier.Dispatch(notification.Event{
			Kind:          notification.KindCancellation,
			AppointmentID: ap.ID,
		})
	}

	uc.auditor.Dispatch(audit.Event{
		ActorID:  &sess.UserID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: in,
	})

	return ap, nil
}
