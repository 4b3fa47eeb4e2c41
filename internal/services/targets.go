package services

import (
	"strings"

	"github.com/arnold/surgitrack-api/internal/apperr"
	"github.com/arnold/surgitrack-api/internal/models"
	"gorm.io/gorm"
)

// AssignTarget creates the staff member if the name is new (admin path),
// then appends one target row and its deliverable. Targets are never
// updated in place; assigning again for the same period adds to the total.
func AssignTarget(db *gorm.DB, req models.AssignTargetRequest) (*models.Target, error) {
	name := strings.TrimSpace(req.StaffName)
	if name == "" {
		return nil, apperr.Validationf("staff name is required")
	}
	if req.TargetCount <= 0 {
		return nil, apperr.Validationf("target count must be positive, got %d", req.TargetCount)
	}
	if _, err := parsePeriod(req.Period); err != nil {
		return nil, err
	}

	caseType := req.CaseType
	if caseType == "" {
		caseType = models.CaseTypeAll
	}

	var target models.Target
	err := db.Transaction(func(tx *gorm.DB) error {
		var staff models.Staff
		err := tx.Where("name = ?", name).First(&staff).Error
		if err == gorm.ErrRecordNotFound {
			staff = models.Staff{
				Name:     name,
				Role:     req.StaffRole,
				Hospital: req.Hospital,
				Region:   req.Region,
			}
			if err := tx.Create(&staff).Error; err != nil {
				return apperr.Store("create staff", err)
			}
		} else if err != nil {
			return apperr.Store("find staff", err)
		}

		target = models.Target{
			StaffID:     staff.ID,
			Period:      req.Period,
			CaseType:    caseType,
			TargetCount: req.TargetCount,
		}
		if err := tx.Create(&target).Error; err != nil {
			return apperr.Store("create target", err)
		}

		return RefreshDeliverables(tx, staff.ID)
	})
	if err != nil {
		return nil, err
	}
	return &target, nil
}
