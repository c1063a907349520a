package models

import "time"

// ModelRow is one line of the heater comparison table.
type ModelRow struct {
	Model          string  `json:"model"`
	FireboxVolumeL float64 `json:"firebox_volume_l"`
	Price          float64 `json:"price"`
	PowerKW        float64 `json:"power_kw"`
	EnergyKWh      float64 `json:"energy_kwh"`
	WoodPerLoadKg  float64 `json:"wood_per_load_kg"`
	Suitable       bool    `json:"suitable"`
}

// Recommendation is the cheapest adequate model with its consumption projection.
type Recommendation struct {
	Model              string  `json:"model"`
	Price              float64 `json:"price"`
	EffectiveBurnHours float64 `json:"effective_burn_hours"`
	LoadsPerDay        int     `json:"loads_per_day"`
	DailyFuelKg        float64 `json:"daily_fuel_kg"`
	MonthlyFuelKg      float64 `json:"monthly_fuel_kg"`
	CostPerKg          float64 `json:"cost_per_kg"`
	DailyCost          float64 `json:"daily_cost"`
	MonthlyCost        float64 `json:"monthly_cost"`
	// DemandDailyFuelKg estimates daily fuel from the heat demand instead of load count.
	DemandDailyFuelKg float64 `json:"demand_daily_fuel_kg"`
}

// EvaluationResult is the output of one full evaluation.
type EvaluationResult struct {
	HeatLossKW      float64           `json:"heat_loss_kw"`
	Breakdown       HeatLossBreakdown `json:"breakdown"`
	RequiredPowerKW float64           `json:"required_power_kw"`
	VolumeM3        float64           `json:"volume_m3"`
	Rows            []ModelRow        `json:"rows"`
	Recommendation  *Recommendation   `json:"recommendation,omitempty"`
	NoneSuitable    bool              `json:"none_suitable"`
}

// Evaluation wraps a result with its inputs and identity.
type Evaluation struct {
	ID          string           `json:"id"`
	EvaluatedAt time.Time        `json:"evaluated_at"`
	Building    BuildingSpec     `json:"building"`
	Fuel        FuelConfig       `json:"fuel"`
	Result      EvaluationResult `json:"result"`
}

// HeatLossBreakdown splits the heat loss by envelope component, in kW.
// TotalKW is the watt sum of the components converted once, so it can differ
// from the sum of the kW fields in the last bits.
type HeatLossBreakdown struct {
	WallsKW       float64 `json:"walls_kw"`
	WindowsKW     float64 `json:"windows_kw"`
	DoorsKW       float64 `json:"doors_kw"`
	RoofKW        float64 `json:"roof_kw"`
	VentilationKW float64 `json:"ventilation_kw"`
	TotalKW       float64 `json:"total_kw"`
}
