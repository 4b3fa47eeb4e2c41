package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CaseTypeAll matches surgeries of every type when used on a Target.
const CaseTypeAll = "all"

// Target is an assigned case-count goal for one staff member over one
// calendar month. Append-only, admin-authored.
type Target struct {
	ID          uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	StaffID     uuid.UUID    `json:"staffId" gorm:"type:uuid;index;not null"`
	Period      string       `json:"period" gorm:"not null"` // "YYYY-MM"
	CaseType    string       `json:"caseType" gorm:"not null;default:'all'"`
	TargetCount int          `json:"targetCount" gorm:"not null"`
	CreatedAt   time.Time    `json:"createdAt"`
	Deliverable *Deliverable `json:"deliverable,omitempty" gorm:"foreignKey:TargetID"`
}

func (t *Target) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Target DTOs
type AssignTargetRequest struct {
	StaffName   string `json:"staffName"`
	StaffRole   string `json:"staffRole"`
	Hospital    string `json:"hospital"`
	Region      string `json:"region"`
	Period      string `json:"period"` // "YYYY-MM"
	CaseType    string `json:"caseType"`
	TargetCount int    `json:"targetCount"`
}
