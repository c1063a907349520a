package models

// BuildingSpec holds the thermal parameters of a heated building, in SI units.
type BuildingSpec struct {
	AreaM2         float64 `json:"area_m2"`
	HeightM        float64 `json:"height_m"`
	Material       string  `json:"material"`
	WallThicknessM float64 `json:"wall_thickness_m"`
	WindowsM2      float64 `json:"windows_m2"`
	DoorsM2        float64 `json:"doors_m2"`
	RoofInsulated  bool    `json:"roof_insulated"`
	IndoorTempC    float64 `json:"indoor_temp_c"`
	OutdoorTempC   float64 `json:"outdoor_temp_c"`
}

// VolumeM3 is the heated volume.
func (b BuildingSpec) VolumeM3() float64 {
	return b.AreaM2 * b.HeightM
}

// DeltaT is the indoor/outdoor temperature difference.
func (b BuildingSpec) DeltaT() float64 {
	return b.IndoorTempC - b.OutdoorTempC
}

// FuelConfig is the operator's fuel and firing setup.
// Fractions are in 0..1, durations in hours.
type FuelConfig struct {
	Fuel            string  `json:"fuel"`
	WoodPricePerM3  float64 `json:"wood_price_per_m3"`
	FillFraction    float64 `json:"fill_fraction"`
	Efficiency      float64 `json:"efficiency"`
	BurnHours       float64 `json:"burn_hours"`
	WorkingDayHours float64 `json:"working_day_hours"`
}
