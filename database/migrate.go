// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"github.com/seangjr/ythwknd25/models"
	"gorm.io/gorm"
)

// Migrate creates the schema. The uniqueness rules the registration flow
// depends on (line, email, team+hero) live here as real constraints, not just
// application-level checks.
func Migrate(db *gorm.DB) error {
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.Team{},
		&models.Hero{},
		&models.Registration{},
		&models.HeroAvailability{},
		&models.TeamInvite{},
	); err != nil {
		return err
	}

	createIndexes(db)

	log.Println("✅ All migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) {
	// Read-path indexes; the unique indexes come from the model tags.
	db.Exec("CREATE INDEX IF NOT EXISTS idx_registrations_team ON registrations(team_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_registrations_created ON registrations(created_at DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_team_invites_team ON team_invites(team_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_team_invites_created ON team_invites(created_at DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_team_invites_expires ON team_invites(expires_at)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_hero_availability_team ON hero_availability(team_id)")
}
