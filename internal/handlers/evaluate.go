package handlers

import (
	"net/http"

	"heater_sizing/internal/models"
	"heater_sizing/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// EvaluateRequest is the form payload in form units: centimeters for the
// wall, percent for fill and efficiency, whole hours for durations.
type EvaluateRequest struct {
	AreaM2          float64  `json:"area_m2" binding:"required,min=20,max=500" example:"100"`
	HeightM         float64  `json:"height_m" binding:"required,min=2,max=5" example:"3"`
	Material        string   `json:"material" binding:"required" example:"кирпич"`
	WallThicknessCM float64  `json:"wall_thickness_cm" binding:"required,min=10,max=100" example:"50"`
	WindowsM2       float64  `json:"windows_m2" binding:"min=0,max=50" example:"10"`
	DoorsM2         float64  `json:"doors_m2" binding:"min=0,max=10" example:"2"`
	RoofInsulated   bool     `json:"roof_insulated" example:"true"`
	IndoorTempC     *float64 `json:"indoor_temp_c" binding:"required,min=-50,max=30" example:"20"`
	OutdoorTempC    *float64 `json:"outdoor_temp_c" binding:"required,min=-50,max=30" example:"-15"`

	Fuel              string  `json:"fuel" binding:"required" example:"берёза"`
	WoodPricePerM3    float64 `json:"wood_price_per_m3" binding:"required,min=1000,max=50000" example:"3500"`
	FillPercent       float64 `json:"fill_percent" binding:"required,min=50,max=100" example:"85"`
	EfficiencyPercent float64 `json:"efficiency_percent" binding:"required,min=70,max=95" example:"88"`
	BurnHours         int     `json:"burn_hours" binding:"required,oneof=2 4 6 8 10" example:"6"`
	WorkingDayHours   int     `json:"working_day_hours" binding:"required,oneof=6 8 10 12 14 16" example:"10"`
}

// Validate applies the binding range rules outside of a gin request.
func (r *EvaluateRequest) Validate() error {
	return binding.Validator.ValidateStruct(r)
}

// ToServiceRequest converts form units into the core's SI units and fractions.
func (r EvaluateRequest) ToServiceRequest() service.EvaluationRequest {
	return service.EvaluationRequest{
		Building: models.BuildingSpec{
			AreaM2:         r.AreaM2,
			HeightM:        r.HeightM,
			Material:       r.Material,
			WallThicknessM: r.WallThicknessCM / 100,
			WindowsM2:      r.WindowsM2,
			DoorsM2:        r.DoorsM2,
			RoofInsulated:  r.RoofInsulated,
			IndoorTempC:    deref(r.IndoorTempC),
			OutdoorTempC:   deref(r.OutdoorTempC),
		},
		Fuel: models.FuelConfig{
			Fuel:            r.Fuel,
			WoodPricePerM3:  r.WoodPricePerM3,
			FillFraction:    r.FillPercent / 100,
			Efficiency:      r.EfficiencyPercent / 100,
			BurnHours:       float64(r.BurnHours),
			WorkingDayHours: float64(r.WorkingDayHours),
		},
	}
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// bindAndEvaluate is shared by the JSON and report endpoints. It writes the
// error response itself and reports whether the caller should continue.
func (h *Handler) bindAndEvaluate(c *gin.Context) (models.Evaluation, bool) {
	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return models.Evaluation{}, false
	}
	ev, err := h.services.Estimator.Evaluate(c.Request.Context(), req.ToServiceRequest())
	if err != nil {
		h.respondEvaluationError(c, err)
		return models.Evaluation{}, false
	}
	return ev, true
}

// @Summary      Evaluate heater models
// @Description  Computes heat loss, compares every catalog model and projects fuel use for the cheapest adequate one
// @Tags         sizing
// @Accept       json
// @Produce      json
// @Param        body  body      EvaluateRequest  true  "Form payload"
// @Success      200   {object}  models.Evaluation
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/evaluate [post]
func (h *Handler) evaluate(c *gin.Context) {
	ev, ok := h.bindAndEvaluate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ev)
}

// @Summary      Catalog
// @Description  Materials, heater models, fuels and the accepted input ranges
// @Tags         sizing
// @Produce      json
// @Success      200  {object}  models.CatalogView
// @Router       /api/v1/catalog [get]
func (h *Handler) getCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Catalog.View(c.Request.Context()))
}
