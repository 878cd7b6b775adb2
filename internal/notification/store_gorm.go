package notification

import (
	"context"

	"gorm.io/gorm"

	"github.com/medibookhq/medibook-api/internal/models"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) EmailDataForAppointment(
	ctx context.Context,
	appointmentID string,
) (EmailData, error) {

	var ap models.Appointment
	if err := s.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Where("id = ?", appointmentID).
		First(&ap).Error; err != nil {
		return EmailData{}, err
	}

	return EmailData{
		PatientEmail: ap.Patient.Email,
		PatientName:  ap.Patient.FullName,
		DoctorName:   ap.Doctor.FullName,
		Department:   ap.Department,
		DateTime:     ap.DateTime,
	}, nil
}

var _ Store = (*GormStore)(nil)
