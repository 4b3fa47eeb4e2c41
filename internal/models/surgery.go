package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Surgery is one logged completed procedure. Rows are append-only: nothing
// in the application updates or deletes them after insert.
type Surgery struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	StaffID         uuid.UUID `json:"staffId" gorm:"type:uuid;index;not null"`
	SurgeryType     string    `json:"surgeryType" gorm:"not null"` // trauma, spine, tumor, arthroplasty, ...
	Hospital        string    `json:"hospital"`
	Region          string    `json:"region"`
	PatientRef      *string   `json:"patientRef"`
	Date            time.Time `json:"date" gorm:"index;not null"`
	DurationMinutes *int      `json:"durationMinutes"`
	Outcome         *string   `json:"outcome"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (s *Surgery) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Surgery DTOs
type LogSurgeryRequest struct {
	StaffID         uuid.UUID  `json:"staffId"`
	SurgeryType     string     `json:"surgeryType"`
	Hospital        string     `json:"hospital"`
	Region          string     `json:"region"`
	PatientRef      *string    `json:"patientRef"`
	Date            *time.Time `json:"date"` // defaults to now
	DurationMinutes *int       `json:"durationMinutes"`
	Outcome         *string    `json:"outcome"`
}
