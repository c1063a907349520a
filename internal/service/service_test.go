package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"heater_sizing/internal/estimator"
	"heater_sizing/internal/models"
	"heater_sizing/internal/report"
)

func birchRequest() EvaluationRequest {
	return EvaluationRequest{
		Building: models.BuildingSpec{
			AreaM2: 100, HeightM: 3, Material: "кирпич", WallThicknessM: 0.5,
			WindowsM2: 10, DoorsM2: 2, RoofInsulated: true,
			IndoorTempC: 20, OutdoorTempC: -15,
		},
		Fuel: models.FuelConfig{
			Fuel: "берёза", WoodPricePerM3: 3500, FillFraction: 0.85,
			Efficiency: 0.88, BurnHours: 6, WorkingDayHours: 10,
		},
	}
}

func newTestEstimator() *EstimatorService {
	s := NewEstimatorService(estimator.New(estimator.DefaultCatalog()), nil)
	s.now = func() time.Time { return time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC) }
	s.newID = func() string { return "eval-1" }
	return s
}

func TestEstimatorService_Evaluate(t *testing.T) {
	s := newTestEstimator()
	req := birchRequest()

	ev, err := s.Evaluate(context.Background(), req)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if ev.ID != "eval-1" || !ev.EvaluatedAt.Equal(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected identity: %s %v", ev.ID, ev.EvaluatedAt)
	}
	if ev.Building != req.Building || ev.Fuel != req.Fuel {
		t.Fatalf("inputs not echoed back")
	}
	if ev.Result.Recommendation == nil || ev.Result.Recommendation.Model != "Муссон 600" {
		t.Fatalf("unexpected recommendation: %+v", ev.Result.Recommendation)
	}
}

func TestEstimatorService_Evaluate_DefaultIDIsUUID(t *testing.T) {
	s := NewEstimatorService(estimator.New(estimator.DefaultCatalog()), nil)
	a, err := s.Evaluate(context.Background(), birchRequest())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	b, _ := s.Evaluate(context.Background(), birchRequest())
	if len(a.ID) != 36 || a.ID == b.ID {
		t.Fatalf("expected distinct uuids, got %q and %q", a.ID, b.ID)
	}
	if a.Result.HeatLossKW != b.Result.HeatLossKW {
		t.Fatalf("evaluation must be deterministic")
	}
}

func TestEstimatorService_Evaluate_Errors(t *testing.T) {
	s := newTestEstimator()

	req := birchRequest()
	req.Building.Material = "стекло"
	if _, err := s.Evaluate(context.Background(), req); !errors.Is(err, estimator.ErrUnknownMaterial) {
		t.Fatalf("expected ErrUnknownMaterial, got %v", err)
	}

	req = birchRequest()
	req.Fuel.Fuel = "уголь"
	if _, err := s.Evaluate(context.Background(), req); !errors.Is(err, estimator.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Evaluate(ctx, birchRequest()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCatalogService_View(t *testing.T) {
	s := NewCatalogService(estimator.DefaultCatalog())
	v := s.View(context.Background())
	if len(v.Materials) != 5 || len(v.Models) != 5 || len(v.Fuels) != 5 {
		t.Fatalf("unexpected catalog sizes: %d/%d/%d", len(v.Materials), len(v.Models), len(v.Fuels))
	}
	if v.Models[0].Name != "Муссон 300" {
		t.Fatalf("catalog order lost: %v", v.Models[0].Name)
	}
	if v.Ranges.AreaM2.Max != 500 || len(v.Ranges.BurnHours) != 5 {
		t.Fatalf("unexpected ranges: %+v", v.Ranges)
	}
}

func TestReportService(t *testing.T) {
	ev, err := newTestEstimator().Evaluate(context.Background(), birchRequest())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	s := NewReportService(report.Options{}, nil)

	var pdf bytes.Buffer
	if err := s.PDF(context.Background(), ev, &pdf); err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !bytes.HasPrefix(pdf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("not a pdf")
	}

	var xlsx bytes.Buffer
	if err := s.XLSX(context.Background(), ev, &xlsx); err != nil {
		t.Fatalf("XLSX: %v", err)
	}
	if !bytes.HasPrefix(xlsx.Bytes(), []byte("PK")) {
		t.Fatalf("not a zip container")
	}
}

func TestReportService_FailedRenderWritesNothing(t *testing.T) {
	ev, _ := newTestEstimator().Evaluate(context.Background(), birchRequest())
	s := NewReportService(report.Options{FontPath: "/nonexistent/font.ttf"}, nil)

	var out bytes.Buffer
	if err := s.PDF(context.Background(), ev, &out); err == nil {
		t.Fatalf("expected render error")
	}
	if out.Len() != 0 {
		t.Fatalf("partial output written: %d bytes", out.Len())
	}
}

func TestNewService_WiresAll(t *testing.T) {
	s := NewService(estimator.DefaultCatalog(), report.Options{}, nil)
	if s.Estimator == nil || s.Catalog == nil || s.Report == nil {
		t.Fatalf("service not fully wired: %+v", s)
	}
}
