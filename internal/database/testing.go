package database

import "testing"

// NewTestDB creates an in-memory blob store for tests and closes it when
// the test finishes.
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test store: %v", err)
		}
	})

	return db
}
