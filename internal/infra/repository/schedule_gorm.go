package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/medibookhq/medibook-api/internal/domain/schedule"
	"github.com/medibookhq/medibook-api/internal/httperr"
	"github.com/medibookhq/medibook-api/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Doctor
// --------------------------------------------------

func (r *ScheduleGormRepository) GetDoctorByID(
	ctx context.Context,
	id string,
) (*models.Doctor, error) {

	var doctor models.Doctor
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&doctor).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *ScheduleGormRepository) GetDoctorForUser(
	ctx context.Context,
	userID string,
) (*models.Doctor, error) {

	var doctor models.Doctor
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&doctor).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *ScheduleGormRepository) ListAvailabilityRules(
	ctx context.Context,
	doctorID string,
) ([]models.AvailabilityRule, error) {

	var rules []models.AvailabilityRule
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("position ASC").
		Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *ScheduleGormRepository) ReplaceAvailabilityRules(
	ctx context.Context,
	doctorID string,
	rules []models.AvailabilityRule,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("doctor_id = ?", doctorID).
			Delete(&models.AvailabilityRule{}).Error; err != nil {
			return err
		}

		if len(rules) == 0 {
			return nil
		}

		for i := range rules {
			rules[i].ID = 0
			rules[i].DoctorID = doctorID
			rules[i].Position = i
		}

		return tx.Create(&rules).Error
	})
}

// --------------------------------------------------
// Appointment (collision set)
// --------------------------------------------------

func (r *ScheduleGormRepository) ListScheduledTimes(
	ctx context.Context,
	doctorID string,
	from time.Time,
	to time.Time,
	excludeID string,
) ([]time.Time, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"doctor_id = ? AND status = ? AND date_time >= ? AND date_time < ?",
			doctorID,
			string(schedule.StatusScheduled),
			from,
			to,
		)

	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var instants []time.Time
	if err := q.
		Order("date_time ASC").
		Pluck("date_time", &instants).Error; err != nil {
		return nil, err
	}

	return instants, nil
}

// --------------------------------------------------
// Appointment (write path)
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.ErrBusiness("slot_taken")
		}
		return err
	}
	return nil
}

func (r *ScheduleGormRepository) GetAppointmentForPatient(
	ctx context.Context,
	appointmentID string,
	patientID string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND patient_id = ?", appointmentID, patientID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *ScheduleGormRepository) GetAppointmentForDoctor(
	ctx context.Context,
	appointmentID string,
	doctorID string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND doctor_id = ?", appointmentID, doctorID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Save(ap).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.ErrBusiness("slot_taken")
		}
		return err
	}
	return nil
}

// --------------------------------------------------
// Appointment (listings)
// --------------------------------------------------

func (r *ScheduleGormRepository) ListAppointmentsForPatient(
	ctx context.Context,
	patientID string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Doctor").
		Where("patient_id = ?", patientID).
		Order("date_time DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ScheduleGormRepository) ListAppointmentsForDoctor(
	ctx context.Context,
	doctorID string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Order("date_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Compile-time check
var _ schedule.Repository = (*ScheduleGormRepository)(nil)
