package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"studypal/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// Rebuild legacy custom_tasks BEFORE AutoMigrate so GORM doesn't attempt
	// the failing ALTER TABLE on a table without a primary key.
	if err := migrateCustomTasksAddPK(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.KVEntry{},
		&entities.CustomTask{},
		&entities.SyllabusSubject{},
		&entities.SyllabusChapter{},
		&entities.PracticeAttempt{},
		&entities.DoubtLog{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// migrateCustomTasksAddPK rebuilds custom_tasks if it lacks a primary key on
// id. Early builds created the table by hand without one.
func migrateCustomTasksAddPK(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='custom_tasks'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	type colInfo struct {
		Cid       int
		Name      string
		Type      string
		NotNull   int
		DfltValue sql.NullString
		Pk        int
	}
	var cols []colInfo
	if err := db.Raw(`PRAGMA table_info(custom_tasks)`).Scan(&cols).Error; err != nil {
		return fmt.Errorf("table_info: %w", err)
	}

	hasIDasPK := false
	for _, c := range cols {
		if strings.ToLower(c.Name) == "id" {
			if c.Pk == 1 {
				hasIDasPK = true
			}
			break
		}
	}
	if hasIDasPK {
		return nil
	}

	createSQL := `
CREATE TABLE custom_tasks_new (
    id TEXT PRIMARY KEY,
    user_id TEXT,
    title TEXT,
    duration_minutes INTEGER,
    completed NUMERIC,
    created_at DATETIME
);
`
	oldCols := map[string]bool{}
	for _, c := range cols {
		oldCols[strings.ToLower(c.Name)] = true
	}
	sel := func(name string) string {
		if oldCols[name] {
			return name
		}
		return "NULL AS " + name
	}
	copySQL := fmt.Sprintf(`
INSERT INTO custom_tasks_new (id, user_id, title, duration_minutes, completed, created_at)
SELECT %s, %s, %s, %s, %s, %s FROM custom_tasks;
`,
		sel("id"),
		sel("user_id"),
		sel("title"),
		sel("duration_minutes"),
		sel("completed"),
		sel("created_at"),
	)

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`PRAGMA foreign_keys=OFF`).Error; err != nil {
			return err
		}
		if err := tx.Exec(createSQL).Error; err != nil {
			return err
		}
		if err := tx.Exec(copySQL).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DROP TABLE custom_tasks`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`ALTER TABLE custom_tasks_new RENAME TO custom_tasks`).Error; err != nil {
			return err
		}
		return tx.Exec(`PRAGMA foreign_keys=ON`).Error
	})
}
