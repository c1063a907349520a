package db

import (
	"path/filepath"
	"testing"
)

func TestInitDB_CreatesCatalogTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	conn, err := InitDB(path)
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer conn.Close()

	for _, table := range []string{"materials", "heater_models", "fuel_types"} {
		var name string
		err := conn.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}

	// idempotent on reopen
	if err := conn.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	again, err := InitDB(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	_ = again.Close()
}

func TestInitDB_RejectsInvalidFuelRow(t *testing.T) {
	conn, err := InitDB(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer conn.Close()

	_, err = conn.Exec(`INSERT INTO fuel_types (name, position, density, calorific_value, fill_coefficient) VALUES ('x', 1, 400, 17, 1.5)`)
	if err == nil {
		t.Fatalf("expected CHECK constraint violation for fill_coefficient > 1")
	}
}
