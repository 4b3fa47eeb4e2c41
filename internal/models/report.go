package models

import "github.com/google/uuid"

// ProgressRow is one line of the dashboard progress table.
type ProgressRow struct {
	StaffID         uuid.UUID `json:"staffId"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	Hospital        string    `json:"hospital"`
	Region          string    `json:"region"`
	TotalTargets    int       `json:"totalTargets"`
	Achieved        int       `json:"achieved"`
	ProgressPercent float64   `json:"progressPercent"`
}

// LeaderboardRow ranks staff by completed case count.
type LeaderboardRow struct {
	Rank          int       `json:"rank"`
	StaffID       uuid.UUID `json:"staffId"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	Completed     int       `json:"completed"`
	TotalTargets  int       `json:"totalTargets"`
	ProgressRatio float64   `json:"progressRatio"`
}

// TrendPoint is one month of the activity series.
type TrendPoint struct {
	Month string `json:"month"` // "YYYY-MM"
	Count int    `json:"count"`
}

// TrendSeries is the monthly counts plus cosmetic derived series. The
// projection is a plain least-squares extrapolation one month forward and
// carries no predictive claim.
type TrendSeries struct {
	Points        []TrendPoint `json:"points"`
	MovingAverage []float64    `json:"movingAverage"`
	Slope         float64      `json:"slope"`
	Intercept     float64      `json:"intercept"`
	Projected     TrendPoint   `json:"projected"`
}

// TargetStatus pairs a target with its deliverable state for the targets view.
type TargetStatus struct {
	Target    Target `json:"target"`
	Achieved  int    `json:"achieved"`
	Completed bool   `json:"completed"`
}
