package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"heater_sizing/internal/models"
	"heater_sizing/internal/report"
)

func printEvaluation(out io.Writer, ev models.Evaluation) {
	r := ev.Result
	fmt.Fprintf(out, "Evaluation %s\n\n", ev.ID)
	fmt.Fprintf(out, "Heat loss:       %s kW\n", report.Quantity(r.HeatLossKW, 2))
	fmt.Fprintf(out, "  walls %s, windows %s, doors %s, roof %s, ventilation %s\n",
		report.Quantity(r.Breakdown.WallsKW, 2),
		report.Quantity(r.Breakdown.WindowsKW, 2),
		report.Quantity(r.Breakdown.DoorsKW, 2),
		report.Quantity(r.Breakdown.RoofKW, 2),
		report.Quantity(r.Breakdown.VentilationKW, 2),
	)
	fmt.Fprintf(out, "Required power:  %s kW\n", report.Quantity(r.RequiredPowerKW, 2))
	fmt.Fprintf(out, "Heated volume:   %s m3\n\n", report.Quantity(r.VolumeM3, 1))

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MODEL\tFIREBOX L\tPRICE\tPOWER kW\tENERGY kWh\tWOOD/LOAD kg\tFIT")
	for _, row := range r.Rows {
		fit := "-"
		if row.Suitable {
			fit = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Model,
			report.Quantity(row.FireboxVolumeL, 0),
			report.Money(row.Price),
			report.Quantity(row.PowerKW, 1),
			report.Quantity(row.EnergyKWh, 1),
			report.Quantity(row.WoodPerLoadKg, 1),
			fit,
		)
	}
	_ = tw.Flush()
	fmt.Fprintln(out)

	rec := r.Recommendation
	if r.NoneSuitable || rec == nil {
		fmt.Fprintln(out, "No model covers the heat loss. Improve insulation or split the load between heaters.")
		return
	}
	fmt.Fprintf(out, "Recommended: %s (%s)\n", rec.Model, report.Money(rec.Price))
	fmt.Fprintf(out, "  loads per day:        %d x %s h\n", rec.LoadsPerDay, report.Quantity(rec.EffectiveBurnHours, 1))
	fmt.Fprintf(out, "  fuel per day/month:   %s / %s kg\n", report.Quantity(rec.DailyFuelKg, 1), report.Quantity(rec.MonthlyFuelKg, 1))
	fmt.Fprintf(out, "  fuel per day (demand): %s kg\n", report.Quantity(rec.DemandDailyFuelKg, 1))
	fmt.Fprintf(out, "  cost per kg:          %s\n", report.Money(rec.CostPerKg))
	fmt.Fprintf(out, "  cost per day/month:   %s / %s\n", report.Money(rec.DailyCost), report.Money(rec.MonthlyCost))
}

func printCatalog(out io.Writer, view models.CatalogView) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "MATERIAL\tCONDUCTIVITY W/mK")
	for _, m := range view.Materials {
		fmt.Fprintf(tw, "%s\t%s\n", m.Name, report.Quantity(m.Conductivity, 2))
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "MODEL\tFIREBOX L\tPRICE")
	for _, h := range view.Models {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", h.Name, report.Quantity(h.FireboxVolumeL, 0), report.Money(h.Price))
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "FUEL\tDENSITY kg/m3\tHEAT MJ/kg\tFILL COEF\tMAX BURN h")
	for _, f := range view.Fuels {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			f.Name,
			report.Quantity(f.Density, 0),
			report.Quantity(f.CalorificValue, 1),
			optional(f.FillCoefficient, 2),
			optional(f.MaxBurnHours, 1),
		)
	}
	_ = tw.Flush()
}

func optional(v float64, places int32) string {
	if v == 0 {
		return "-"
	}
	return report.Quantity(v, places)
}
