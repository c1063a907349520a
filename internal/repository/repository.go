package repository

import (
	"context"
	"database/sql"

	"heater_sizing/internal/models"
)

// CatalogRepo reads and seeds the catalog tables. Requests never write to it.
type CatalogRepo interface {
	Materials(ctx context.Context) ([]models.Material, error)
	HeaterModels(ctx context.Context) ([]models.HeaterModel, error)
	FuelTypes(ctx context.Context) ([]models.FuelType, error)
	Seed(ctx context.Context, materials []models.Material, heaters []models.HeaterModel, fuels []models.FuelType) error
}

type Repository struct {
	Catalog CatalogRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Catalog: NewCatalogSQLite(db),
	}
}
