package service

import (
	"context"
	"io"

	"heater_sizing/internal/estimator"
	"heater_sizing/internal/logger"
	"heater_sizing/internal/models"
	"heater_sizing/internal/report"
)

// EvaluationRequest carries one set of form inputs in core units.
type EvaluationRequest struct {
	Building models.BuildingSpec `json:"building"`
	Fuel     models.FuelConfig   `json:"fuel"`
}

// Estimator runs a full sizing evaluation.
type Estimator interface {
	Evaluate(ctx context.Context, req EvaluationRequest) (models.Evaluation, error)
}

// Catalog exposes the active catalog together with the input ranges.
type Catalog interface {
	View(ctx context.Context) models.CatalogView
}

// Report renders an evaluation into a downloadable document.
type Report interface {
	PDF(ctx context.Context, ev models.Evaluation, w io.Writer) error
	XLSX(ctx context.Context, ev models.Evaluation, w io.Writer) error
}

type Service struct {
	Estimator
	Catalog
	Report
}

// NewService wires the immutable catalog into concrete services.
func NewService(cat *estimator.Catalog, opts report.Options, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		Estimator: NewEstimatorService(estimator.New(cat), log.With("component", "estimator")),
		Catalog:   NewCatalogService(cat),
		Report:    NewReportService(opts, log.With("component", "report")),
	}
}
