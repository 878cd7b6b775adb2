package models

import "time"

// AvailabilityRule is one recurring weekly open interval for one doctor.
// The full list is replaced wholesale on every save; Position keeps the
// doctor's display order, it carries no scheduling meaning.
type AvailabilityRule struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	DoctorID string `gorm:"size:36;index;not null" json:"doctor_id"`

	Day       string `gorm:"size:10;not null" json:"day"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Position  int    `json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
