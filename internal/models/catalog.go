package models

// Material is a wall material with its thermal conductivity.
type Material struct {
	Name         string  `json:"name"`
	Conductivity float64 `json:"conductivity"` // W/(m·K)
}

// HeaterModel is one entry of the heater catalog.
type HeaterModel struct {
	Name           string  `json:"name"`
	FireboxVolumeL float64 `json:"firebox_volume_l"`
	Price          float64 `json:"price"`
}

// FuelType describes a solid fuel.
//
// FillCoefficient and MaxBurnHours are optional: zero means the fuel fills the
// whole nominal firebox volume and its burn duration is not capped.
type FuelType struct {
	Name            string  `json:"name"`
	Density         float64 `json:"density"`         // kg/m³
	CalorificValue  float64 `json:"calorific_value"` // MJ/kg
	FillCoefficient float64 `json:"fill_coefficient,omitempty"`
	MaxBurnHours    float64 `json:"max_burn_hours,omitempty"`
}

// EffectiveFillCoefficient returns the packing factor, 1.0 when unset.
func (f FuelType) EffectiveFillCoefficient() float64 {
	if f.FillCoefficient == 0 {
		return 1.0
	}
	return f.FillCoefficient
}

// CapBurnHours limits the configured burn duration by the fuel's own maximum.
func (f FuelType) CapBurnHours(burnHours float64) float64 {
	if f.MaxBurnHours > 0 && f.MaxBurnHours < burnHours {
		return f.MaxBurnHours
	}
	return burnHours
}

// CatalogView is the read-only catalog snapshot exposed to clients.
type CatalogView struct {
	Materials []Material    `json:"materials"`
	Models    []HeaterModel `json:"models"`
	Fuels     []FuelType    `json:"fuels"`
	Ranges    InputRanges   `json:"ranges"`
}

// Range is a closed numeric interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// InputRanges are the clamps applied by the input layer.
type InputRanges struct {
	AreaM2          Range     `json:"area_m2"`
	HeightM         Range     `json:"height_m"`
	WallThicknessCM Range     `json:"wall_thickness_cm"`
	WindowsM2       Range     `json:"windows_m2"`
	DoorsM2         Range     `json:"doors_m2"`
	TemperatureC    Range     `json:"temperature_c"`
	WoodPricePerM3  Range     `json:"wood_price_per_m3"`
	FillPercent     Range     `json:"fill_percent"`
	EfficiencyPct   Range     `json:"efficiency_percent"`
	BurnHours       []float64 `json:"burn_hours"`
	WorkingDayHours []float64 `json:"working_day_hours"`
}

// DefaultInputRanges mirrors the bounds of the input form.
func DefaultInputRanges() InputRanges {
	return InputRanges{
		AreaM2:          Range{Min: 20, Max: 500},
		HeightM:         Range{Min: 2.0, Max: 5.0},
		WallThicknessCM: Range{Min: 10, Max: 100},
		WindowsM2:       Range{Min: 0, Max: 50},
		DoorsM2:         Range{Min: 0, Max: 10},
		TemperatureC:    Range{Min: -50, Max: 30},
		WoodPricePerM3:  Range{Min: 1000, Max: 50000},
		FillPercent:     Range{Min: 50, Max: 100},
		EfficiencyPct:   Range{Min: 70, Max: 95},
		BurnHours:       []float64{2, 4, 6, 8, 10},
		WorkingDayHours: []float64{6, 8, 10, 12, 14, 16},
	}
}
