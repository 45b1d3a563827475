package repository

import (
	"path/filepath"
	"testing"

	"github.com/willowmind/willow/internal/db"
)

func newTestStores(t *testing.T) *db.Stores {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "willow-repo-test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	return db.NewStores(database)
}
