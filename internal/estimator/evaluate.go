package estimator

import (
	"fmt"
	"math"

	"heater_sizing/internal/models"
)

const (
	// SafetyMargin is applied to the heat loss to get the required power.
	SafetyMargin = 1.2
	// WorkingDaysPerMonth is used for monthly projections.
	WorkingDaysPerMonth = 22
)

// Estimator evaluates buildings against a catalog. It holds no mutable state.
type Estimator struct {
	catalog *Catalog
}

func New(c *Catalog) *Estimator {
	return &Estimator{catalog: c}
}

func (e *Estimator) Catalog() *Catalog {
	return e.catalog
}

// HeatLoss resolves the wall material and returns the total heat loss in kW.
func (e *Estimator) HeatLoss(b models.BuildingSpec) (float64, error) {
	bd, err := e.heatLoss(b)
	if err != nil {
		return 0, err
	}
	return bd.TotalKW, nil
}

func (e *Estimator) heatLoss(b models.BuildingSpec) (models.HeatLossBreakdown, error) {
	m, ok := e.catalog.Material(b.Material)
	if !ok {
		return models.HeatLossBreakdown{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, b.Material)
	}
	return HeatLoss(b, m.Conductivity)
}

// Evaluate compares every catalog model against the building's required power
// and picks the cheapest adequate one. When no model is adequate the result
// has NoneSuitable set, keeps all rows, and carries no projection.
func (e *Estimator) Evaluate(b models.BuildingSpec, cfg models.FuelConfig) (models.EvaluationResult, error) {
	fuel, ok := e.catalog.Fuel(cfg.Fuel)
	if !ok {
		return models.EvaluationResult{}, fmt.Errorf("%w: %q", ErrUnknownFuel, cfg.Fuel)
	}
	if err := validateFuelConfig(cfg); err != nil {
		return models.EvaluationResult{}, err
	}

	bd, err := e.heatLoss(b)
	if err != nil {
		return models.EvaluationResult{}, err
	}
	heatLoss := bd.TotalKW
	required := SafetyMargin * heatLoss

	res := models.EvaluationResult{
		HeatLossKW:      heatLoss,
		Breakdown:       bd,
		RequiredPowerKW: required,
		VolumeM3:        b.VolumeM3(),
	}

	best := -1
	for _, h := range e.catalog.heaters {
		out, err := FuelPower(h.FireboxVolumeL, cfg.FillFraction, fuel, cfg.Efficiency, cfg.BurnHours)
		if err != nil {
			return models.EvaluationResult{}, fmt.Errorf("model %q: %w", h.Name, err)
		}
		row := models.ModelRow{
			Model:          h.Name,
			FireboxVolumeL: h.FireboxVolumeL,
			Price:          h.Price,
			PowerKW:        out.PowerKW,
			EnergyKWh:      out.UsefulEnergyKWh,
			WoodPerLoadKg:  out.FuelMassKg,
			Suitable:       out.PowerKW >= required,
		}
		res.Rows = append(res.Rows, row)
		// strict < keeps the first of equally priced models
		if row.Suitable && (best < 0 || row.Price < res.Rows[best].Price) {
			best = len(res.Rows) - 1
		}
	}

	if best < 0 {
		res.NoneSuitable = true
		return res, nil
	}

	rec := project(res.Rows[best], fuel, cfg, heatLoss)
	res.Recommendation = &rec
	return res, nil
}

func project(row models.ModelRow, fuel models.FuelType, cfg models.FuelConfig, heatLossKW float64) models.Recommendation {
	burn := fuel.CapBurnHours(cfg.BurnHours)
	loads := int(math.Ceil(cfg.WorkingDayHours / burn))

	daily := row.WoodPerLoadKg * float64(loads)
	monthly := daily * WorkingDaysPerMonth
	// price is per m³ of wood; density converts it to per kg
	costPerKg := cfg.WoodPricePerM3 / fuel.Density

	usefulPerKg := fuel.CalorificValue / mjPerKWh * cfg.Efficiency

	return models.Recommendation{
		Model:              row.Model,
		Price:              row.Price,
		EffectiveBurnHours: burn,
		LoadsPerDay:        loads,
		DailyFuelKg:        daily,
		MonthlyFuelKg:      monthly,
		CostPerKg:          costPerKg,
		DailyCost:          daily * costPerKg,
		MonthlyCost:        monthly * costPerKg,
		DemandDailyFuelKg:  heatLossKW * cfg.WorkingDayHours / usefulPerKg,
	}
}

func validateFuelConfig(cfg models.FuelConfig) error {
	switch {
	case !finite(cfg.WoodPricePerM3) || cfg.WoodPricePerM3 < 0:
		return invalidInput("wood price must be >= 0, got %v", cfg.WoodPricePerM3)
	case !finite(cfg.FillFraction) || cfg.FillFraction < 0:
		return invalidInput("fill fraction must be >= 0, got %v", cfg.FillFraction)
	case !positive(cfg.Efficiency):
		return invalidInput("efficiency must be > 0, got %v", cfg.Efficiency)
	case !positive(cfg.BurnHours):
		return invalidInput("burn hours must be > 0, got %v", cfg.BurnHours)
	case !finite(cfg.WorkingDayHours) || cfg.WorkingDayHours < 0:
		return invalidInput("working day hours must be >= 0, got %v", cfg.WorkingDayHours)
	}
	return nil
}
