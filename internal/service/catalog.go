package service

import (
	"context"
	"fmt"

	"heater_sizing/internal/estimator"
	"heater_sizing/internal/logger"
	"heater_sizing/internal/models"
	"heater_sizing/internal/repository"
)

type CatalogService struct {
	view models.CatalogView
}

func NewCatalogService(cat *estimator.Catalog) *CatalogService {
	return &CatalogService{view: models.CatalogView{
		Materials: cat.Materials(),
		Models:    cat.HeaterModels(),
		Fuels:     cat.Fuels(),
		Ranges:    models.DefaultInputRanges(),
	}}
}

// View returns a snapshot built once at startup; callers may not mutate it.
func (s *CatalogService) View(_ context.Context) models.CatalogView {
	return s.view
}

// LoadCatalog reads the catalog tables into an immutable estimator catalog.
// With seed set, missing built-in rows are inserted first.
func LoadCatalog(ctx context.Context, repo repository.CatalogRepo, seed bool, log *logger.Logger) (*estimator.Catalog, error) {
	if seed {
		if err := repo.Seed(ctx, estimator.DefaultMaterials(), estimator.DefaultHeaterModels(), estimator.DefaultFuels()); err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
	}

	materials, err := repo.Materials(ctx)
	if err != nil {
		return nil, fmt.Errorf("load materials: %w", err)
	}
	heaters, err := repo.HeaterModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("load heater models: %w", err)
	}
	fuels, err := repo.FuelTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load fuel types: %w", err)
	}

	cat, err := estimator.NewCatalog(materials, heaters, fuels)
	if err != nil {
		return nil, err
	}
	if log != nil {
		log.Infow("catalog_loaded", "materials", len(materials), "models", len(heaters), "fuels", len(fuels))
	}
	return cat, nil
}
