// database/seed.go - Static catalog seeding
package database

import (
	"log"

	"github.com/seangjr/ythwknd25/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed inserts the fixed teams, heroes, and the default-true availability
// matrix. Idempotent: existing rows are left untouched so an availability
// flag flipped by a registration survives restarts.
func Seed(db *gorm.DB) error {
	log.Println("🌱 Seeding static event catalog...")

	for _, team := range models.Teams {
		t := team
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&t).Error; err != nil {
			return err
		}
	}

	for _, hero := range models.Heroes {
		h := hero
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&h).Error; err != nil {
			return err
		}
	}

	for _, team := range models.Teams {
		for _, hero := range models.Heroes {
			row := models.HeroAvailability{
				TeamID:      team.ID,
				HeroID:      hero.ID,
				IsAvailable: true,
			}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
				return err
			}
		}
	}

	log.Printf("✅ Catalog seeded: %d teams, %d heroes", len(models.Teams), len(models.Heroes))
	return nil
}
