package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Doctor struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	UserID *string `gorm:"size:36;uniqueIndex" json:"user_id"`

	FullName   string `gorm:"size:100;not null" json:"full_name"`
	Specialty  string `gorm:"size:100" json:"specialty"`
	Department string `gorm:"size:100;index;not null" json:"department"`
	Bio        string `gorm:"size:500" json:"bio"`

	IsApproved bool `gorm:"default:false" json:"is_approved"`

	AvailabilityRules []AvailabilityRule `gorm:"constraint:OnDelete:CASCADE;" json:"availability_rules,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
