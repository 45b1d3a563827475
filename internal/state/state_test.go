package state

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/willowmind/willow/internal/db"
)

func newTestStores(t *testing.T) *db.Stores {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "willow-state-test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	return db.NewStores(database)
}

func awaitDone(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("mutation failed: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for mutation completion")
	}
}
