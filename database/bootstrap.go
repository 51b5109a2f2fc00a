package database

import (
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"towergrow/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Slot{},
		&entities.LabReading{},
		&entities.RewardStats{},
		&entities.NotifyState{},
		&entities.GuideDocument{},
		&entities.GuideChunk{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	if err := migrateSlotsUniqueIndex(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	return db
}

// migrateSlotsUniqueIndex adds the (user_id, index) unique index on slots
// when the table predates it. AutoMigrate does not retrofit composite
// indexes onto existing SQLite tables.
func migrateSlotsUniqueIndex(db *gorm.DB) error {
	var names []string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='index' AND tbl_name='slots'`).Scan(&names).Error; err != nil {
		return err
	}
	for _, n := range names {
		if strings.EqualFold(n, "idx_slot_user_index") {
			return nil
		}
	}
	return db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_slot_user_index ON slots(user_id, `index`)").Error
}
