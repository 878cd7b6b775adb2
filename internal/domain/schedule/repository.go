package schedule

import (
	"context"
	"time"

	"github.com/medibookhq/medibook-api/internal/models"
)

type Repository interface {
	// -------- Doctor --------
	GetDoctorByID(
		ctx context.Context,
		id string,
	) (*models.Doctor, error)

	GetDoctorForUser(
		ctx context.Context,
		userID string,
	) (*models.Doctor, error)

	// -------- Availability --------
	ListAvailabilityRules(
		ctx context.Context,
		doctorID string,
	) ([]models.AvailabilityRule, error)

	// ReplaceAvailabilityRules overwrites the doctor's whole rule list.
	// Concurrent editors race and the last save wins; that is the contract.
	ReplaceAvailabilityRules(
		ctx context.Context,
		doctorID string,
		rules []models.AvailabilityRule,
	) error

	// -------- Appointment (collision set) --------
	// ListScheduledTimes returns the instants of scheduled appointments for
	// the doctor in [from, to). excludeID drops one appointment from the set
	// so its own slot reads as free while it is being rescheduled.
	ListScheduledTimes(
		ctx context.Context,
		doctorID string,
		from time.Time,
		to time.Time,
		excludeID string,
	) ([]time.Time, error)

	// -------- Appointment (write path) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentForPatient(
		ctx context.Context,
		appointmentID string,
		patientID string,
	) (*models.Appointment, error)

	GetAppointmentForDoctor(
		ctx context.Context,
		appointmentID string,
		doctorID string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForPatient(
		ctx context.Context,
		patientID string,
	) ([]models.Appointment, error)

	ListAppointmentsForDoctor(
		ctx context.Context,
		doctorID string,
	) ([]models.Appointment, error)
}
