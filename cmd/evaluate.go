package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"heater_sizing/internal/handlers"
	"heater_sizing/internal/logger"
	"heater_sizing/internal/report"
	"heater_sizing/internal/service"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// evaluateFlags default to the values the input form opens with.
type evaluateFlags struct {
	req       handlers.EvaluateRequest
	indoorC   float64
	outdoorC  float64
	format    string
	reportPDF string
}

func evaluateCmd(v *viper.Viper, flags *rootFlags) *cobra.Command {
	ef := &evaluateFlags{}
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate one building and fuel setup and print the comparison",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEvaluate(cmd.Context(), cmd.OutOrStdout(), v, flags, ef)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&ef.req.AreaM2, "area", 100, "floor area, m2 (20-500)")
	f.Float64Var(&ef.req.HeightM, "height", 2.5, "ceiling height, m (2-5)")
	f.StringVar(&ef.req.Material, "material", "кирпич", "wall material")
	f.Float64Var(&ef.req.WallThicknessCM, "wall-cm", 40, "wall thickness, cm (10-100)")
	f.Float64Var(&ef.req.WindowsM2, "windows", 5, "window area, m2 (0-50)")
	f.Float64Var(&ef.req.DoorsM2, "doors", 2, "door area, m2 (0-10)")
	f.BoolVar(&ef.req.RoofInsulated, "roof-insulated", true, "roof is insulated")
	f.Float64Var(&ef.indoorC, "indoor", 22, "indoor temperature, C")
	f.Float64Var(&ef.outdoorC, "outdoor", -20, "outdoor temperature, C")
	f.StringVar(&ef.req.Fuel, "fuel", "хвойные", "fuel type")
	f.Float64Var(&ef.req.WoodPricePerM3, "price", 3500, "wood price per m3 (1000-50000)")
	f.Float64Var(&ef.req.FillPercent, "fill", 85, "firebox fill, % (50-100)")
	f.Float64Var(&ef.req.EfficiencyPercent, "efficiency", 88, "boiler efficiency, % (70-95)")
	f.IntVar(&ef.req.BurnHours, "burn-hours", 6, "burn time per load, h (2, 4, 6, 8, 10)")
	f.IntVar(&ef.req.WorkingDayHours, "work-hours", 10, "working day, h (6-16, even)")
	f.StringVar(&ef.format, "format", formatTable, "output format: table or json")
	f.StringVar(&ef.reportPDF, "pdf", "", "also write a PDF report to this path")
	return cmd
}

func runEvaluate(ctx context.Context, out io.Writer, v *viper.Viper, flags *rootFlags, ef *evaluateFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if ef.format != formatTable && ef.format != formatJSON {
		return fmt.Errorf("unsupported format %q (want %s or %s)", ef.format, formatTable, formatJSON)
	}

	req := ef.req
	req.IndoorTempC, req.OutdoorTempC = &ef.indoorC, &ef.outdoorC
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	cfg, err := loadConfig(v, flags)
	if err != nil {
		return err
	}
	log := logger.New(logger.ErrorLevel, cfg.Log.Format)

	cat, err := loadCatalog(ctx, cfg, log)
	if err != nil {
		return err
	}
	services := service.NewService(cat, report.Options{FontPath: cfg.Report.FontPath}, log)

	ev, err := services.Estimator.Evaluate(ctx, req.ToServiceRequest())
	if err != nil {
		return err
	}

	if ef.reportPDF != "" {
		if err := writePDFFile(ctx, services, ev, ef.reportPDF); err != nil {
			return err
		}
	}

	if ef.format == formatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(ev)
	}
	printEvaluation(out, ev)
	return nil
}
