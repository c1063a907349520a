package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens/creates the SQLite catalog file and ensures tables exist.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// The catalog is read once at startup and seeded by a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const sqliteDriverName = "sqlite"

const schemaMaterials = `
CREATE TABLE IF NOT EXISTS materials (
    name TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    conductivity REAL NOT NULL CHECK (conductivity > 0)
);
`

const schemaHeaterModels = `
CREATE TABLE IF NOT EXISTS heater_models (
    name TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    firebox_volume_l REAL NOT NULL CHECK (firebox_volume_l > 0),
    price REAL NOT NULL CHECK (price >= 0)
);
`

const schemaFuelTypes = `
CREATE TABLE IF NOT EXISTS fuel_types (
    name TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    density REAL NOT NULL CHECK (density > 0),
    calorific_value REAL NOT NULL CHECK (calorific_value > 0),
    fill_coefficient REAL CHECK (fill_coefficient IS NULL OR (fill_coefficient > 0 AND fill_coefficient <= 1)),
    max_burn_hours REAL CHECK (max_burn_hours IS NULL OR max_burn_hours > 0)
);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaMaterials,
		schemaHeaterModels,
		schemaFuelTypes,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
