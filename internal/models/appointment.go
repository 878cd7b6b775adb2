package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	PatientID string  `gorm:"size:36;index;not null" json:"patient_id"`
	Patient   Profile `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient"`

	DoctorID string `gorm:"size:36;index;not null" json:"doctor_id"`
	Doctor   Doctor `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"doctor"`

	Department string    `gorm:"size:100" json:"department"`
	DateTime   time.Time `gorm:"not null" json:"date_time"`

	// SlotKey is the doctor id joined with DateTime truncated to the hour.
	// A partial unique index over scheduled rows rejects the second of two
	// concurrent bookings for the same doctor/hour (see db.NewDB).
	SlotKey string `gorm:"size:80;not null" json:"-"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`
	Notes  string `gorm:"size:500" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
