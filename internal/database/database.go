package database

import (
	"fmt"

	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migrate creates the tables owned by the grading and refund workers.
func Migrate(db *gorm.DB, entities ...interface{}) error {
	if err := db.AutoMigrate(entities...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	return nil
}

// SeedGradings inserts a few demo records for local runs. Existing rows are left alone.
func SeedGradings(db *gorm.DB) error {
	records := []models.GradingRecord{
		{
			GradingID:  "seed-grading-1",
			UserID:     "user_1",
			CardID:     "base1-4",
			CardName:   "Charizard",
			Address:    "1 Pallet Town Rd #01-01",
			PostalCode: "111111",
			Status:     models.GradingStatusGraded,
			Result:     "PSA 9",
			DeliveryID: "1001",
		},
		{
			GradingID:  "seed-grading-2",
			UserID:     "user_1",
			CardID:     "base1-58",
			CardName:   "Pikachu",
			Address:    "1 Pallet Town Rd #01-01",
			PostalCode: "111111",
			Status:     models.GradingStatusPendingGrading,
			DeliveryID: "1002",
		},
	}

	for _, record := range records {
		result := db.Where(models.GradingRecord{GradingID: record.GradingID}).FirstOrCreate(&record)
		if result.Error != nil {
			return result.Error
		}
	}

	logrus.Info("Grading records seeded")
	return nil
}
