package service

import (
	"context"
	"errors"
	"testing"

	"heater_sizing/internal/estimator"
	"heater_sizing/internal/models"
)

type fakeCatalogRepo struct {
	materials []models.Material
	heaters   []models.HeaterModel
	fuels     []models.FuelType

	seedErr   error
	fuelsErr  error
	seedCalls int
}

func (f *fakeCatalogRepo) Materials(ctx context.Context) ([]models.Material, error) {
	return f.materials, nil
}
func (f *fakeCatalogRepo) HeaterModels(ctx context.Context) ([]models.HeaterModel, error) {
	return f.heaters, nil
}
func (f *fakeCatalogRepo) FuelTypes(ctx context.Context) ([]models.FuelType, error) {
	return f.fuels, f.fuelsErr
}
func (f *fakeCatalogRepo) Seed(ctx context.Context, m []models.Material, h []models.HeaterModel, fu []models.FuelType) error {
	f.seedCalls++
	if f.seedErr != nil {
		return f.seedErr
	}
	if len(f.materials) == 0 {
		f.materials, f.heaters, f.fuels = m, h, fu
	}
	return nil
}

func TestLoadCatalog_SeedsEmptyStore(t *testing.T) {
	repo := &fakeCatalogRepo{}
	cat, err := LoadCatalog(context.Background(), repo, true, nil)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if repo.seedCalls != 1 {
		t.Fatalf("expected one seed call, got %d", repo.seedCalls)
	}
	if len(cat.HeaterModels()) != 5 {
		t.Fatalf("expected built-in models")
	}
}

func TestLoadCatalog_UsesStoredRows(t *testing.T) {
	repo := &fakeCatalogRepo{
		materials: []models.Material{{Name: "кирпич", Conductivity: 0.81}},
		heaters:   []models.HeaterModel{{Name: "Муссон 1000", FireboxVolumeL: 200, Price: 85000}},
		fuels:     []models.FuelType{{Name: "берёза", Density: 450, CalorificValue: 18, FillCoefficient: 0.7, MaxBurnHours: 5}},
	}
	cat, err := LoadCatalog(context.Background(), repo, false, nil)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if repo.seedCalls != 0 {
		t.Fatalf("seed must not run when disabled")
	}
	f, ok := cat.Fuel("берёза")
	if !ok || f.FillCoefficient != 0.7 || f.MaxBurnHours != 5 {
		t.Fatalf("stored fuel coefficients lost: %+v", f)
	}
}

func TestLoadCatalog_Errors(t *testing.T) {
	boom := errors.New("boom")

	if _, err := LoadCatalog(context.Background(), &fakeCatalogRepo{seedErr: boom}, true, nil); !errors.Is(err, boom) {
		t.Fatalf("expected seed error, got %v", err)
	}
	if _, err := LoadCatalog(context.Background(), &fakeCatalogRepo{fuelsErr: boom}, false, nil); !errors.Is(err, boom) {
		t.Fatalf("expected fuels error, got %v", err)
	}
	if _, err := LoadCatalog(context.Background(), &fakeCatalogRepo{}, false, nil); !errors.Is(err, estimator.ErrInvalidCatalog) {
		t.Fatalf("expected ErrInvalidCatalog for empty store, got %v", err)
	}
}
