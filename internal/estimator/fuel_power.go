package estimator

import "heater_sizing/internal/models"

const mjPerKWh = 3.6

// LoadOutput is what one firebox load delivers.
type LoadOutput struct {
	UsefulEnergyKWh float64
	PowerKW         float64 // average over the burn, not peak
	FuelMassKg      float64
}

// FuelPower computes the useful energy, average power and fuel mass of one
// load. burnHours is used as given; capping by the fuel's maximum burn
// duration is the caller's concern.
func FuelPower(fireboxVolumeL, fillFraction float64, fuel models.FuelType, efficiency, burnHours float64) (LoadOutput, error) {
	switch {
	case !finite(fireboxVolumeL) || fireboxVolumeL < 0:
		return LoadOutput{}, invalidInput("firebox volume must be >= 0, got %v", fireboxVolumeL)
	case !finite(fillFraction) || fillFraction < 0:
		return LoadOutput{}, invalidInput("fill fraction must be >= 0, got %v", fillFraction)
	case !finite(efficiency) || efficiency < 0:
		return LoadOutput{}, invalidInput("efficiency must be >= 0, got %v", efficiency)
	case !positive(burnHours):
		return LoadOutput{}, invalidInput("burn hours must be > 0, got %v", burnHours)
	case !positive(fuel.Density):
		return LoadOutput{}, invalidInput("fuel %q: density must be > 0", fuel.Name)
	case !positive(fuel.CalorificValue):
		return LoadOutput{}, invalidInput("fuel %q: calorific value must be > 0", fuel.Name)
	}

	filledM3 := fireboxVolumeL / 1000 * fillFraction * fuel.EffectiveFillCoefficient()
	mass := filledM3 * fuel.Density
	energyKWh := mass * fuel.CalorificValue / mjPerKWh
	useful := energyKWh * efficiency

	return LoadOutput{
		UsefulEnergyKWh: useful,
		PowerKW:         useful / burnHours,
		FuelMassKg:      mass,
	}, nil
}
