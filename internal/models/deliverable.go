package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Deliverable is the derived completion flag for one Target: set when the
// matching surgery count reaches the target count, cleared otherwise. It is
// recomputed, never edited directly.
type Deliverable struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TargetID        uuid.UUID `json:"targetId" gorm:"type:uuid;uniqueIndex;not null"`
	DeliverableType string    `json:"deliverableType" gorm:"not null;default:'cases'"`
	IsCompleted     bool      `json:"isCompleted" gorm:"default:false"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (d *Deliverable) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
