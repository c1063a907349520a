package estimator

import (
	"math"

	"heater_sizing/internal/models"
)

// Catalog is an immutable set of lookup tables: wall materials, heater models
// (ordered) and fuel types. Accessors return copies.
type Catalog struct {
	materials   []models.Material
	materialIdx map[string]int
	heaters     []models.HeaterModel
	fuels       []models.FuelType
	fuelIdx     map[string]int
}

// NewCatalog validates the tables and builds a catalog from them.
func NewCatalog(materials []models.Material, heaters []models.HeaterModel, fuels []models.FuelType) (*Catalog, error) {
	if len(materials) == 0 {
		return nil, invalidCatalog("no materials")
	}
	if len(heaters) == 0 {
		return nil, invalidCatalog("no heater models")
	}
	if len(fuels) == 0 {
		return nil, invalidCatalog("no fuel types")
	}

	c := &Catalog{
		materials:   append([]models.Material(nil), materials...),
		materialIdx: make(map[string]int, len(materials)),
		heaters:     append([]models.HeaterModel(nil), heaters...),
		fuels:       append([]models.FuelType(nil), fuels...),
		fuelIdx:     make(map[string]int, len(fuels)),
	}

	for i, m := range c.materials {
		if m.Name == "" {
			return nil, invalidCatalog("material #%d has no name", i+1)
		}
		if _, dup := c.materialIdx[m.Name]; dup {
			return nil, invalidCatalog("duplicate material %q", m.Name)
		}
		if !positive(m.Conductivity) {
			return nil, invalidCatalog("material %q: conductivity must be > 0", m.Name)
		}
		c.materialIdx[m.Name] = i
	}

	seen := make(map[string]struct{}, len(c.heaters))
	for i, h := range c.heaters {
		if h.Name == "" {
			return nil, invalidCatalog("heater model #%d has no name", i+1)
		}
		if _, dup := seen[h.Name]; dup {
			return nil, invalidCatalog("duplicate heater model %q", h.Name)
		}
		if !positive(h.FireboxVolumeL) {
			return nil, invalidCatalog("heater model %q: firebox volume must be > 0", h.Name)
		}
		if !finite(h.Price) || h.Price < 0 {
			return nil, invalidCatalog("heater model %q: price must be >= 0", h.Name)
		}
		seen[h.Name] = struct{}{}
	}

	for i, f := range c.fuels {
		if f.Name == "" {
			return nil, invalidCatalog("fuel #%d has no name", i+1)
		}
		if _, dup := c.fuelIdx[f.Name]; dup {
			return nil, invalidCatalog("duplicate fuel %q", f.Name)
		}
		if !positive(f.Density) {
			return nil, invalidCatalog("fuel %q: density must be > 0", f.Name)
		}
		if !positive(f.CalorificValue) {
			return nil, invalidCatalog("fuel %q: calorific value must be > 0", f.Name)
		}
		// zero means "not modelled"
		if f.FillCoefficient != 0 && (!positive(f.FillCoefficient) || f.FillCoefficient > 1) {
			return nil, invalidCatalog("fuel %q: fill coefficient must be in (0, 1]", f.Name)
		}
		if f.MaxBurnHours != 0 && !positive(f.MaxBurnHours) {
			return nil, invalidCatalog("fuel %q: max burn hours must be > 0", f.Name)
		}
		c.fuelIdx[f.Name] = i
	}

	return c, nil
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultMaterials(), DefaultHeaterModels(), DefaultFuels())
	if err != nil {
		panic(err)
	}
	return c
}

func DefaultMaterials() []models.Material {
	return []models.Material{
		{Name: "кирпич", Conductivity: 0.81},
		{Name: "газоблок", Conductivity: 0.12},
		{Name: "дерево", Conductivity: 0.18},
		{Name: "сэндвич-панель", Conductivity: 0.04},
		{Name: "керамзит блок", Conductivity: 0.43},
	}
}

func DefaultHeaterModels() []models.HeaterModel {
	return []models.HeaterModel{
		{Name: "Муссон 300", FireboxVolumeL: 77, Price: 45000},
		{Name: "Муссон 600", FireboxVolumeL: 125, Price: 65000},
		{Name: "Муссон 1000", FireboxVolumeL: 200, Price: 85000},
		{Name: "Муссон 1500", FireboxVolumeL: 311, Price: 110000},
		{Name: "Муссон 2000", FireboxVolumeL: 467, Price: 135000},
	}
}

// DefaultFuels carries no fill coefficients or burn caps; those are set per
// fuel in the catalog store when known.
func DefaultFuels() []models.FuelType {
	return []models.FuelType{
		{Name: "хвойные", Density: 350, CalorificValue: 17},
		{Name: "берёза", Density: 450, CalorificValue: 18},
		{Name: "дуб", Density: 550, CalorificValue: 19.5},
		{Name: "липа", Density: 500, CalorificValue: 17.5},
		{Name: "отходы", Density: 700, CalorificValue: 12}, // ЛДСП, ДСП, фанера
	}
}

func (c *Catalog) Material(name string) (models.Material, bool) {
	i, ok := c.materialIdx[name]
	if !ok {
		return models.Material{}, false
	}
	return c.materials[i], true
}

func (c *Catalog) Fuel(name string) (models.FuelType, bool) {
	i, ok := c.fuelIdx[name]
	if !ok {
		return models.FuelType{}, false
	}
	return c.fuels[i], true
}

func (c *Catalog) Materials() []models.Material {
	return append([]models.Material(nil), c.materials...)
}

// HeaterModels returns the models in catalog order.
func (c *Catalog) HeaterModels() []models.HeaterModel {
	return append([]models.HeaterModel(nil), c.heaters...)
}

func (c *Catalog) Fuels() []models.FuelType {
	return append([]models.FuelType(nil), c.fuels...)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func positive(v float64) bool {
	return finite(v) && v > 0
}
