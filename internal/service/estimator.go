package service

import (
	"context"
	"time"

	"heater_sizing/internal/estimator"
	"heater_sizing/internal/logger"
	"heater_sizing/internal/models"

	"github.com/google/uuid"
)

type EstimatorService struct {
	core  *estimator.Estimator
	log   *logger.Logger
	now   func() time.Time
	newID func() string
}

func NewEstimatorService(core *estimator.Estimator, log *logger.Logger) *EstimatorService {
	if log == nil {
		log = logger.Nop()
	}
	return &EstimatorService{
		core:  core,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Evaluate computes the comparison and projection for one request.
// Nothing is stored; the ID only correlates logs and exported reports.
func (s *EstimatorService) Evaluate(ctx context.Context, req EvaluationRequest) (models.Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return models.Evaluation{}, err
	}

	res, err := s.core.Evaluate(req.Building, req.Fuel)
	if err != nil {
		s.log.Infow("evaluation_rejected", "err", err, "material", req.Building.Material, "fuel", req.Fuel.Fuel)
		return models.Evaluation{}, err
	}

	ev := models.Evaluation{
		ID:          s.newID(),
		EvaluatedAt: s.now(),
		Building:    req.Building,
		Fuel:        req.Fuel,
		Result:      res,
	}

	recommended := ""
	if res.Recommendation != nil {
		recommended = res.Recommendation.Model
	}
	s.log.Infow("evaluation_done",
		"evaluation_id", ev.ID,
		"heat_loss_kw", res.HeatLossKW,
		"required_kw", res.RequiredPowerKW,
		"recommended", recommended,
		"none_suitable", res.NoneSuitable,
	)
	return ev, nil
}
