// testutil/testutil.go - Shared test fixtures
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/seangjr/ythwknd25/config"
	"github.com/seangjr/ythwknd25/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an isolated in-memory database with the full schema
// and catalog seeded.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One shared in-memory DB per test, torn down with the last connection.
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database instance: %v", err)
	}
	// sqlite allows one writer; serialize to avoid lock errors in tests.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}

	return db
}

// GetTestConfig returns a config with deterministic values.
func GetTestConfig() config.Config {
	return config.Config{
		HTTPAddr:                ":3000",
		MetricsAddr:             ":9100",
		BasePublicURL:           "https://ythwknd.example.com",
		CORSOrigins:             "http://localhost:3000",
		RateLimitMaxRequests:    1000,
		RateLimitWindowSeconds:  60,
		RegisterLimitMax:        1000,
		RegisterLimitWindowSecs: 60,
	}
}
