package services

import (
	"github.com/arnold/surgitrack-api/internal/apperr"
	"github.com/arnold/surgitrack-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// achievedForTarget counts the surgeries that satisfy one target: same
// staff, dated inside the target's month, and matching the case type unless
// the target covers all types.
func achievedForTarget(db *gorm.DB, target models.Target) (int, error) {
	start, end, err := periodRange(target.Period)
	if err != nil {
		return 0, err
	}

	q := db.Model(&models.Surgery{}).
		Where("staff_id = ?", target.StaffID).
		Where("date >= ? AND date < ?", start, end)
	if target.CaseType != models.CaseTypeAll {
		q = q.Where("surgery_type = ?", target.CaseType)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, apperr.Store("count target surgeries", err)
	}
	return int(count), nil
}

// RefreshDeliverables recomputes the completion flag for every target of one
// staff member. A deliverable flips completed when the matching case count
// reaches the target count, and flips back if it no longer does.
func RefreshDeliverables(db *gorm.DB, staffID uuid.UUID) error {
	var targets []models.Target
	if err := db.Where("staff_id = ?", staffID).Find(&targets).Error; err != nil {
		return apperr.Store("list targets", err)
	}

	for _, target := range targets {
		achieved, err := achievedForTarget(db, target)
		if err != nil {
			return err
		}
		completed := achieved >= target.TargetCount

		var deliverable models.Deliverable
		err = db.Where("target_id = ?", target.ID).First(&deliverable).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			deliverable = models.Deliverable{TargetID: target.ID, IsCompleted: completed}
			if err := db.Create(&deliverable).Error; err != nil {
				return apperr.Store("create deliverable", err)
			}
		case err != nil:
			return apperr.Store("load deliverable", err)
		case deliverable.IsCompleted != completed:
			if err := db.Model(&deliverable).Update("is_completed", completed).Error; err != nil {
				return apperr.Store("update deliverable", err)
			}
		}
	}
	return nil
}

// TargetStatuses returns a staff member's targets with the live achieved
// count and deliverable state, newest first.
func TargetStatuses(db *gorm.DB, staffID uuid.UUID) ([]models.TargetStatus, error) {
	var staff models.Staff
	if err := db.First(&staff, "id = ?", staffID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("staff", staffID.String())
		}
		return nil, apperr.Store("load staff", err)
	}

	var targets []models.Target
	if err := db.Where("staff_id = ?", staffID).
		Preload("Deliverable").
		Order("period DESC, created_at DESC").
		Find(&targets).Error; err != nil {
		return nil, apperr.Store("list targets", err)
	}

	statuses := make([]models.TargetStatus, 0, len(targets))
	for _, target := range targets {
		achieved, err := achievedForTarget(db, target)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, models.TargetStatus{
			Target:    target,
			Achieved:  achieved,
			Completed: achieved >= target.TargetCount,
		})
	}
	return statuses, nil
}
