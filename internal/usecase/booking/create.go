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

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	DoctorID   string
	Department string
	DateTime   time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     schedule.Repository
	notifier Notifier
	auditor  Auditor
	cache    *cache.SlotCache
}

func NewCreateAppointment(
	repo schedule.Repository,
	notifier Notifier,
	auditor Auditor,
	slotCache *cache.SlotCache,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		notifier: notifier,
		auditor:  auditor,
		cache:    slotCache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	sess Session,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if !sess.Authenticated() {
		return nil, httperr.ErrBusiness("authentication_required")
	}

	doctor, err := uc.repo.GetDoctorByID(ctx, in.DoctorID)
	if err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}
	if !doctor.IsApproved {
		return nil, httperr.ErrBusiness("doctor_not_approved")
	}

	department := in.Department
	if department == "" {
		department = doctor.Department
	}

	ap := &models.Appointment{
		PatientID:  sess.UserID,
		DoctorID:   doctor.ID,
		Department: department,
		DateTime:   in.DateTime,
		SlotKey:    schedule.SlotKey(doctor.ID, in.DateTime),
		Status:     string(schedule.InitialStatus()),
	}

	// The slot shown to the user is not re-checked here; the partial unique
	// index on slot_key turns a lost race into slot_taken instead of a
	// silent double booking.
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			metrics.BookingConflicts.Inc()
		}
		return nil, err
	}

	metrics.BookingsTotal.Inc()
	uc.cache.Invalidate(ctx, doctor.ID)

	uc.notifier.Dispatch(notification.Event{
		Kind:          notification.KindConfirmation,
		AppointmentID: ap.ID,
	})

	uc.auditor.Dispatch(audit.Event{
		ActorID:  &ap.PatientID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
