package services

import (
	"github.com/arnold/surgitrack-api/internal/apperr"
	"github.com/arnold/surgitrack-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// fixtureStaff is development sample data, not a durable contract.
var fixtureStaff = []models.Staff{
	{Name: "Alice Mwangi", Role: "Surgeon", Hospital: "St. Mary's", Region: "North"},
	{Name: "Brian Otieno", Role: "Surgeon", Hospital: "St. Mary's", Region: "North"},
	{Name: "Carol Njeri", Role: "Surgeon", Hospital: "General Hospital", Region: "Central"},
	{Name: "David Kimani", Role: "Nurse", Hospital: "General Hospital", Region: "Central"},
	{Name: "Esther Wambui", Role: "Surgeon", Hospital: "Coast Clinic", Region: "East"},
	{Name: "Frank Oduya", Role: "Anesthetist", Hospital: "Coast Clinic", Region: "East"},
}

// SeedStaff loads the fixture staff list. It only runs against an empty
// staff table, so calling it twice (or on a live database) does nothing.
func SeedStaff(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&models.Staff{}).Count(&count).Error; err != nil {
		return 0, apperr.Store("count staff", err)
	}
	if count > 0 {
		return 0, nil
	}

	for i := range fixtureStaff {
		staff := fixtureStaff[i]
		if err := db.Create(&staff).Error; err != nil {
			return 0, apperr.Store("seed staff", err)
		}
	}

	logrus.WithField("staff", len(fixtureStaff)).Info("seeded fixture staff")
	return len(fixtureStaff), nil
}
