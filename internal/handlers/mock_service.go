package handlers

import (
	"context"
	"io"

	"heater_sizing/internal/estimator"
	"heater_sizing/internal/models"
	"heater_sizing/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockEstimator struct {
	resp    models.Evaluation
	err     error
	calls   int
	lastReq service.EvaluationRequest
}

func (m *mockEstimator) Evaluate(ctx context.Context, req service.EvaluationRequest) (models.Evaluation, error) {
	m.calls++
	m.lastReq = req
	return m.resp, m.err
}

type mockCatalog struct {
	view models.CatalogView
}

func (m *mockCatalog) View(ctx context.Context) models.CatalogView {
	return m.view
}

type mockReport struct {
	body   string
	err    error
	pdfs   int
	xlsxes int
	lastID string
}

func (m *mockReport) PDF(ctx context.Context, ev models.Evaluation, w io.Writer) error {
	m.pdfs++
	return m.write(ev, w)
}
func (m *mockReport) XLSX(ctx context.Context, ev models.Evaluation, w io.Writer) error {
	m.xlsxes++
	return m.write(ev, w)
}
func (m *mockReport) write(ev models.Evaluation, w io.Writer) error {
	m.lastID = ev.ID
	if m.err != nil {
		return m.err
	}
	_, err := io.WriteString(w, m.body)
	return err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, Options{})
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// realService wires the real estimator over the built-in catalog.
func realService() *service.Service {
	cat := estimator.DefaultCatalog()
	return &service.Service{
		Estimator: service.NewEstimatorService(estimator.New(cat), nil),
		Catalog:   service.NewCatalogService(cat),
		Report:    &mockReport{body: "doc"},
	}
}

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"area_m2":            100,
		"height_m":           3,
		"material":           "кирпич",
		"wall_thickness_cm":  50,
		"windows_m2":         10,
		"doors_m2":           2,
		"roof_insulated":     true,
		"indoor_temp_c":      20,
		"outdoor_temp_c":     -15,
		"fuel":               "берёза",
		"wood_price_per_m3":  3500,
		"fill_percent":       85,
		"efficiency_percent": 88,
		"burn_hours":         6,
		"working_day_hours":  10,
	}
}
