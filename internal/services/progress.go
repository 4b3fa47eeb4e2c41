package services

import (
	"math"

	"github.com/arnold/surgitrack-api/internal/apperr"
	"github.com/arnold/surgitrack-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// progressPercent guards the division: a staff member with no assigned
// target is at 0%, never a division error.
func progressPercent(achieved, target int) float64 {
	if target <= 0 {
		return 0
	}
	return math.Round(float64(achieved)/float64(target)*1000) / 10
}

// targetSum totals a staff member's assigned target counts. An empty
// period means all-time.
func targetSum(db *gorm.DB, staffID uuid.UUID, period string) (int, error) {
	q := db.Model(&models.Target{}).Where("staff_id = ?", staffID)
	if period != "" {
		q = q.Where("period = ?", period)
	}
	var total int64
	if err := q.Select("COALESCE(SUM(target_count), 0)").Scan(&total).Error; err != nil {
		return 0, apperr.Store("sum targets", err)
	}
	return int(total), nil
}

func surgeryCount(db *gorm.DB, staffID uuid.UUID, period string) (int, error) {
	q := db.Model(&models.Surgery{}).Where("staff_id = ?", staffID)
	if period != "" {
		start, end, err := periodRange(period)
		if err != nil {
			return 0, err
		}
		q = q.Where("date >= ? AND date < ?", start, end)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, apperr.Store("count surgeries", err)
	}
	return int(count), nil
}

// StaffProgress aggregates one staff member's assigned targets and logged
// surgeries. period narrows the scope to one month when non-empty.
func StaffProgress(db *gorm.DB, staffID uuid.UUID, period string) (*models.ProgressRow, error) {
	var staff models.Staff
	if err := db.First(&staff, "id = ?", staffID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("staff", staffID.String())
		}
		return nil, apperr.Store("load staff", err)
	}
	return staffProgressRow(db, staff, period)
}

func staffProgressRow(db *gorm.DB, staff models.Staff, period string) (*models.ProgressRow, error) {
	total, err := targetSum(db, staff.ID, period)
	if err != nil {
		return nil, err
	}
	achieved, err := surgeryCount(db, staff.ID, period)
	if err != nil {
		return nil, err
	}
	return &models.ProgressRow{
		StaffID:         staff.ID,
		Name:            staff.Name,
		Role:            staff.Role,
		Hospital:        staff.Hospital,
		Region:          staff.Region,
		TotalTargets:    total,
		Achieved:        achieved,
		ProgressPercent: progressPercent(achieved, total),
	}, nil
}

// AllStaffProgress returns one progress row per staff member, in staff
// creation order.
func AllStaffProgress(db *gorm.DB, period string) ([]models.ProgressRow, error) {
	var staffList []models.Staff
	if err := db.Order("created_at ASC").Find(&staffList).Error; err != nil {
		return nil, apperr.Store("list staff", err)
	}

	rows := make([]models.ProgressRow, 0, len(staffList))
	for _, staff := range staffList {
		row, err := staffProgressRow(db, staff, period)
		if err != nil {
			return nil, err
		}
		rows = append(rows, *row)
	}
	return rows, nil
}
