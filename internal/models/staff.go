package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Staff struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Role      string    `json:"role" gorm:"not null"` // e.g. Surgeon, Nurse
	Hospital  string    `json:"hospital"`
	Region    string    `json:"region"`
	CreatedAt time.Time `json:"createdAt"`
	Surgeries []Surgery `json:"surgeries,omitempty" gorm:"foreignKey:StaffID"`
	Targets   []Target  `json:"targets,omitempty" gorm:"foreignKey:StaffID"`
}

func (s *Staff) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
