package services

import (
	"sort"

	"github.com/arnold/surgitrack-api/internal/apperr"
	"github.com/arnold/surgitrack-api/internal/models"
	"gorm.io/gorm"
)

// Leaderboard ranks all staff by completed case count, descending. The sort
// is stable: staff with equal counts keep their creation order.
func Leaderboard(db *gorm.DB) ([]models.LeaderboardRow, error) {
	var staffList []models.Staff
	if err := db.Order("created_at ASC").Find(&staffList).Error; err != nil {
		return nil, apperr.Store("list staff", err)
	}

	rows := make([]models.LeaderboardRow, 0, len(staffList))
	for _, staff := range staffList {
		completed, err := surgeryCount(db, staff.ID, "")
		if err != nil {
			return nil, err
		}
		total, err := targetSum(db, staff.ID, "")
		if err != nil {
			return nil, err
		}

		ratio := 0.0
		if total > 0 {
			ratio = float64(completed) / float64(total)
		}

		rows = append(rows, models.LeaderboardRow{
			StaffID:       staff.ID,
			Name:          staff.Name,
			Role:          staff.Role,
			Completed:     completed,
			TotalTargets:  total,
			ProgressRatio: ratio,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Completed > rows[j].Completed
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows, nil
}
