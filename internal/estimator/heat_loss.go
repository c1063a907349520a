package estimator

import (
	"math"

	"heater_sizing/internal/models"
)

// Fixed envelope resistances (m²·K/W) and the air-change factor.
const (
	windowResistance        = 0.4
	doorResistance          = 0.6
	roofResistanceInsulated = 1.0
	roofResistanceBare      = 0.2
	ventilationFactor       = 0.3
)

// HeatLoss estimates the building heat loss per envelope component for a wall
// material of the given conductivity. The floor plan is treated as a square. A non-positive
// temperature difference yields a zero or negative result, returned as is.
func HeatLoss(b models.BuildingSpec, conductivity float64) (models.HeatLossBreakdown, error) {
	if err := validateBuilding(b); err != nil {
		return models.HeatLossBreakdown{}, err
	}
	if !positive(conductivity) {
		return models.HeatLossBreakdown{}, invalidInput("conductivity must be > 0, got %v", conductivity)
	}

	dt := b.DeltaT()
	perimeter := 4 * math.Sqrt(b.AreaM2)
	wallArea := 2*b.HeightM*perimeter - b.WindowsM2 - b.DoorsM2
	rWall := b.WallThicknessM / conductivity

	rRoof := roofResistanceBare
	if b.RoofInsulated {
		rRoof = roofResistanceInsulated
	}

	wallsW := wallArea * dt / rWall
	windowsW := b.WindowsM2 * dt / windowResistance
	doorsW := b.DoorsM2 * dt / doorResistance
	roofW := b.AreaM2 * dt / rRoof
	ventW := ventilationFactor * b.VolumeM3() * dt

	return models.HeatLossBreakdown{
		WallsKW:       wallsW / 1000,
		WindowsKW:     windowsW / 1000,
		DoorsKW:       doorsW / 1000,
		RoofKW:        roofW / 1000,
		VentilationKW: ventW / 1000,
		TotalKW:       (wallsW + windowsW + doorsW + roofW + ventW) / 1000,
	}, nil
}

func validateBuilding(b models.BuildingSpec) error {
	fields := []struct {
		name string
		v    float64
	}{
		{"area", b.AreaM2},
		{"height", b.HeightM},
		{"wall thickness", b.WallThicknessM},
		{"windows area", b.WindowsM2},
		{"doors area", b.DoorsM2},
		{"indoor temp", b.IndoorTempC},
		{"outdoor temp", b.OutdoorTempC},
	}
	for _, f := range fields {
		if !finite(f.v) {
			return invalidInput("%s is not a finite number", f.name)
		}
	}
	switch {
	case b.AreaM2 < 0:
		return invalidInput("area must be >= 0, got %v", b.AreaM2)
	case b.HeightM < 0:
		return invalidInput("height must be >= 0, got %v", b.HeightM)
	case b.WallThicknessM <= 0:
		return invalidInput("wall thickness must be > 0, got %v", b.WallThicknessM)
	case b.WindowsM2 < 0:
		return invalidInput("windows area must be >= 0, got %v", b.WindowsM2)
	case b.DoorsM2 < 0:
		return invalidInput("doors area must be >= 0, got %v", b.DoorsM2)
	}
	return nil
}
