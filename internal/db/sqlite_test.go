package db

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "willow-test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	return database
}

func newTestStores(t *testing.T) *Stores {
	t.Helper()
	return NewStores(openTestDatabase(t))
}

func TestOpenSQLiteAppliesEmbeddedMigrations(t *testing.T) {
	database := openTestDatabase(t)

	expectedTables := []string{
		"quotes",
		"mood_entries",
		"journal_entries",
		"todo_items",
		"sleep_sessions",
		"fun_facts",
		"mental_health_tips",
		"chat_rooms",
		"chat_messages",
		"user_profiles",
	}
	for _, table := range expectedTables {
		var count int64
		if err := database.Raw(
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&count).Error; err != nil {
			t.Fatalf("inspect table %s: %v", table, err)
		}
		if count != 1 {
			t.Fatalf("expected table %s to exist after migrations", table)
		}
	}

	var applied int64
	if err := database.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied).Error; err != nil {
		t.Fatalf("load schema_migrations: %v", err)
	}
	if applied == 0 {
		t.Fatal("expected at least one recorded migration")
	}
}

func TestOpenSQLiteIsIdempotent(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "willow-reopen.db")

	if _, err := OpenSQLite(databasePath); err != nil {
		t.Fatalf("first OpenSQLite() failed: %v", err)
	}
	if _, err := OpenSQLite(databasePath); err != nil {
		t.Fatalf("second OpenSQLite() failed: %v", err)
	}
}
