// database/bootstrap.go
package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"elevare/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Roadmap{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	// newest-first per-user listing hits this index
	if err := db.Exec(
		`CREATE INDEX IF NOT EXISTS idx_roadmaps_user_created ON roadmaps(user_id, created_at DESC)`,
	).Error; err != nil {
		log.Fatalf("index roadmaps: %v", err)
	}

	return db
}
