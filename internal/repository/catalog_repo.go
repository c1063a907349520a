package repository

import (
	"context"
	"database/sql"
	"fmt"

	"heater_sizing/internal/models"
)

type CatalogSQLite struct {
	db *sql.DB
}

func NewCatalogSQLite(db *sql.DB) *CatalogSQLite {
	return &CatalogSQLite{db: db}
}

// Ensure implementation of CatalogRepo interface at compile time.
var _ CatalogRepo = (*CatalogSQLite)(nil)

const (
	selectMaterialsSQL = `SELECT name, conductivity FROM materials ORDER BY position ASC`
	selectHeatersSQL   = `SELECT name, firebox_volume_l, price FROM heater_models ORDER BY position ASC`
	selectFuelsSQL     = `SELECT name, density, calorific_value, fill_coefficient, max_burn_hours FROM fuel_types ORDER BY position ASC`

	// Seeding never overwrites rows an operator already edited.
	insertMaterialSQL = `INSERT INTO materials (name, position, conductivity) VALUES (?, ?, ?) ON CONFLICT(name) DO NOTHING`
	insertHeaterSQL   = `INSERT INTO heater_models (name, position, firebox_volume_l, price) VALUES (?, ?, ?, ?) ON CONFLICT(name) DO NOTHING`
	insertFuelSQL     = `INSERT INTO fuel_types (name, position, density, calorific_value, fill_coefficient, max_burn_hours) VALUES (?, ?, ?, ?, ?, ?) ON CONFLICT(name) DO NOTHING`
)

// Materials returns wall materials in catalog order.
func (r *CatalogSQLite) Materials(ctx context.Context) ([]models.Material, error) {
	rows, err := r.db.QueryContext(ctx, selectMaterialsSQL)
	if err != nil {
		return nil, fmt.Errorf("select materials: %w", err)
	}
	defer rows.Close()

	var out []models.Material
	for rows.Next() {
		var m models.Material
		if err := rows.Scan(&m.Name, &m.Conductivity); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// HeaterModels returns heater models in catalog order.
func (r *CatalogSQLite) HeaterModels(ctx context.Context) ([]models.HeaterModel, error) {
	rows, err := r.db.QueryContext(ctx, selectHeatersSQL)
	if err != nil {
		return nil, fmt.Errorf("select heater models: %w", err)
	}
	defer rows.Close()

	var out []models.HeaterModel
	for rows.Next() {
		var h models.HeaterModel
		if err := rows.Scan(&h.Name, &h.FireboxVolumeL, &h.Price); err != nil {
			return nil, fmt.Errorf("scan heater model: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FuelTypes returns fuels in catalog order. NULL fill coefficient or max burn
// hours map to zero, meaning "not modelled".
func (r *CatalogSQLite) FuelTypes(ctx context.Context) ([]models.FuelType, error) {
	rows, err := r.db.QueryContext(ctx, selectFuelsSQL)
	if err != nil {
		return nil, fmt.Errorf("select fuel types: %w", err)
	}
	defer rows.Close()

	var out []models.FuelType
	for rows.Next() {
		var (
			f        models.FuelType
			fill     sql.NullFloat64
			maxBurnH sql.NullFloat64
		)
		if err := rows.Scan(&f.Name, &f.Density, &f.CalorificValue, &fill, &maxBurnH); err != nil {
			return nil, fmt.Errorf("scan fuel type: %w", err)
		}
		if fill.Valid {
			f.FillCoefficient = fill.Float64
		}
		if maxBurnH.Valid {
			f.MaxBurnHours = maxBurnH.Float64
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Seed inserts missing catalog rows in a single transaction.
func (r *CatalogSQLite) Seed(ctx context.Context, materials []models.Material, heaters []models.HeaterModel, fuels []models.FuelType) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, m := range materials {
		if _, err := tx.ExecContext(ctx, insertMaterialSQL, m.Name, i+1, m.Conductivity); err != nil {
			return fmt.Errorf("seed material %q: %w", m.Name, err)
		}
	}
	for i, h := range heaters {
		if _, err := tx.ExecContext(ctx, insertHeaterSQL, h.Name, i+1, h.FireboxVolumeL, h.Price); err != nil {
			return fmt.Errorf("seed heater model %q: %w", h.Name, err)
		}
	}
	for i, f := range fuels {
		if _, err := tx.ExecContext(ctx, insertFuelSQL, f.Name, i+1, f.Density, f.CalorificValue,
			nullIfZero(f.FillCoefficient), nullIfZero(f.MaxBurnHours)); err != nil {
			return fmt.Errorf("seed fuel %q: %w", f.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	return nil
}

func nullIfZero(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: v != 0}
}
