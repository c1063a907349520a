package report

import (
	"fmt"
	"io"

	"heater_sizing/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	SheetComparison = "Comparison"
	SheetSummary    = "Summary"
)

var comparisonHeader = []interface{}{
	"Model", "Firebox, L", "Price", "Power, kW", "Energy per load, kWh", "Wood per load, kg", "Suitable",
}

// WriteXLSX exports the comparison table and a summary sheet.
func WriteXLSX(w io.Writer, ev models.Evaluation) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetComparison); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeComparison(f, ev.Result); err != nil {
		return err
	}
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}
	if err := writeSummary(f, ev); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func writeComparison(f *excelize.File, r models.EvaluationResult) error {
	if err := f.SetSheetRow(SheetComparison, "A1", &comparisonHeader); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetComparison, "A1", "G1", bold); err != nil {
		return err
	}

	for i, row := range r.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		suitable := "no"
		if row.Suitable {
			suitable = "yes"
		}
		values := []interface{}{
			row.Model,
			row.FireboxVolumeL,
			roundMoney(row.Price),
			round(row.PowerKW, 2),
			round(row.EnergyKWh, 2),
			round(row.WoodPerLoadKg, 2),
			suitable,
		}
		if err := f.SetSheetRow(SheetComparison, cell, &values); err != nil {
			return err
		}
	}
	return f.SetColWidth(SheetComparison, "A", "G", 18)
}

func writeSummary(f *excelize.File, ev models.Evaluation) error {
	res := ev.Result
	rows := [][]interface{}{
		{"Evaluation", ev.ID},
		{"Evaluated at", ev.EvaluatedAt.UTC().Format("2006-01-02 15:04:05")},
		{"Material", ev.Building.Material},
		{"Fuel", ev.Fuel.Fuel},
		{"Heat loss, kW", round(res.HeatLossKW, 2)},
		{"Required power, kW", round(res.RequiredPowerKW, 2)},
		{"Heated volume, m3", round(res.VolumeM3, 2)},
	}
	if rec := res.Recommendation; rec != nil {
		rows = append(rows,
			[]interface{}{"Recommended model", rec.Model},
			[]interface{}{"Price", roundMoney(rec.Price)},
			[]interface{}{"Burn time per load, h", rec.EffectiveBurnHours},
			[]interface{}{"Loads per day", rec.LoadsPerDay},
			[]interface{}{"Fuel per day, kg", round(rec.DailyFuelKg, 2)},
			[]interface{}{"Fuel per month, kg", round(rec.MonthlyFuelKg, 2)},
			[]interface{}{"Fuel per day by demand, kg", round(rec.DemandDailyFuelKg, 2)},
			[]interface{}{"Cost per kg", roundMoney(rec.CostPerKg)},
			[]interface{}{"Cost per day", roundMoney(rec.DailyCost)},
			[]interface{}{"Cost per month", roundMoney(rec.MonthlyCost)},
		)
	} else {
		rows = append(rows, []interface{}{"Recommended model", "none suitable"})
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetSummary, cell, &rows[i]); err != nil {
			return err
		}
	}
	return f.SetColWidth(SheetSummary, "A", "A", 30)
}
