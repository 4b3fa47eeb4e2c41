package services

import (
	"strings"
	"time"

	"github.com/arnold/surgitrack-api/internal/apperr"
	"github.com/arnold/surgitrack-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LogSurgery appends one surgery row for an existing staff member. An
// unknown staff id fails with NotFoundError before anything is written —
// never a silent no-op.
func LogSurgery(db *gorm.DB, req models.LogSurgeryRequest) (*models.Surgery, error) {
	if req.StaffID == uuid.Nil {
		return nil, apperr.Validationf("staff id is required")
	}
	if strings.TrimSpace(req.SurgeryType) == "" {
		return nil, apperr.Validationf("surgery type is required")
	}

	date := time.Now().UTC()
	if req.Date != nil {
		date = req.Date.UTC()
	}

	var surgery models.Surgery
	err := db.Transaction(func(tx *gorm.DB) error {
		var staff models.Staff
		if err := tx.First(&staff, "id = ?", req.StaffID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return apperr.NotFound("staff", req.StaffID.String())
			}
			return apperr.Store("find staff", err)
		}

		hospital := req.Hospital
		if hospital == "" {
			hospital = staff.Hospital
		}
		region := req.Region
		if region == "" {
			region = staff.Region
		}

		surgery = models.Surgery{
			StaffID:         staff.ID,
			SurgeryType:     req.SurgeryType,
			Hospital:        hospital,
			Region:          region,
			PatientRef:      req.PatientRef,
			Date:            date,
			DurationMinutes: req.DurationMinutes,
			Outcome:         req.Outcome,
		}
		if err := tx.Create(&surgery).Error; err != nil {
			return apperr.Store("create surgery", err)
		}

		return RefreshDeliverables(tx, staff.ID)
	})
	if err != nil {
		return nil, err
	}
	return &surgery, nil
}

// ListSurgeries returns the raw surgery log, newest first.
func ListSurgeries(db *gorm.DB, offset, limit int) ([]models.Surgery, int64, error) {
	var surgeries []models.Surgery
	if err := db.Order("date DESC").
		Offset(offset).
		Limit(limit).
		Find(&surgeries).Error; err != nil {
		return nil, 0, apperr.Store("list surgeries", err)
	}

	var total int64
	if err := db.Model(&models.Surgery{}).Count(&total).Error; err != nil {
		return nil, 0, apperr.Store("count surgeries", err)
	}
	return surgeries, total, nil
}
