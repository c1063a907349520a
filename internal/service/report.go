package service

import (
	"bytes"
	"context"
	"io"

	"heater_sizing/internal/logger"
	"heater_sizing/internal/models"
	"heater_sizing/internal/report"
)

type ReportService struct {
	opts report.Options
	log  *logger.Logger
}

func NewReportService(opts report.Options, log *logger.Logger) *ReportService {
	if log == nil {
		log = logger.Nop()
	}
	return &ReportService{opts: opts, log: log}
}

// PDF renders into memory first so a failed render never leaves a partial
// document in w.
func (s *ReportService) PDF(ctx context.Context, ev models.Evaluation, w io.Writer) error {
	return s.render(ctx, "pdf", ev, w, func(buf *bytes.Buffer) error {
		return report.WritePDF(buf, ev, s.opts)
	})
}

func (s *ReportService) XLSX(ctx context.Context, ev models.Evaluation, w io.Writer) error {
	return s.render(ctx, "xlsx", ev, w, func(buf *bytes.Buffer) error {
		return report.WriteXLSX(buf, ev)
	})
}

func (s *ReportService) render(ctx context.Context, kind string, ev models.Evaluation, w io.Writer, fn func(*bytes.Buffer) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		s.log.Errorw("report_failed", "err", err, "kind", kind, "evaluation_id", ev.ID)
		return err
	}
	n, err := buf.WriteTo(w)
	if err != nil {
		return err
	}
	s.log.Infow("report_rendered", "kind", kind, "evaluation_id", ev.ID, "bytes", n)
	return nil
}
