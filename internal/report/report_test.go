package report

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"
	"unicode/utf16"

	"heater_sizing/internal/models"

	"github.com/xuri/excelize/v2"
)

func sampleEvaluation(withRecommendation bool) models.Evaluation {
	res := models.EvaluationResult{
		HeatLossKW:      24.42965,
		RequiredPowerKW: 29.31558,
		VolumeM3:        300,
		Rows: []models.ModelRow{
			{Model: "Муссон 300", FireboxVolumeL: 77, Price: 45000, PowerKW: 21.6, EnergyKWh: 129.6, WoodPerLoadKg: 29.5},
			{Model: "Муссон 600", FireboxVolumeL: 125, Price: 65000, PowerKW: 35.1, EnergyKWh: 210.4, WoodPerLoadKg: 47.8, Suitable: true},
		},
	}
	if withRecommendation {
		res.Recommendation = &models.Recommendation{
			Model: "Муссон 600", Price: 65000, EffectiveBurnHours: 6, LoadsPerDay: 2,
			DailyFuelKg: 95.625, MonthlyFuelKg: 2103.75, CostPerKg: 7.777777,
			DailyCost: 743.75, MonthlyCost: 16362.5, DemandDailyFuelKg: 55.52,
		}
	} else {
		res.NoneSuitable = true
		for i := range res.Rows {
			res.Rows[i].Suitable = false
		}
	}
	return models.Evaluation{
		ID:          "3f1c0d5e-0000-4000-8000-000000000001",
		EvaluatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		Building:    models.BuildingSpec{AreaM2: 100, HeightM: 3, Material: "кирпич", WallThicknessM: 0.5, WindowsM2: 10, DoorsM2: 2, IndoorTempC: 20, OutdoorTempC: -15},
		Fuel:        models.FuelConfig{Fuel: "берёза", WoodPricePerM3: 3500, FillFraction: 0.85, Efficiency: 0.88, BurnHours: 6, WorkingDayHours: 10},
		Result:      res,
	}
}

func TestMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{743.75, "743.75"},
		{7.777777, "7.78"},
		{0.125, "0.13"},
		{16362.5, "16362.50"},
		{0, "0.00"},
	}
	for _, tc := range cases {
		if got := Money(tc.in); got != tc.want {
			t.Fatalf("Money(%v)=%q, want %q", tc.in, got, tc.want)
		}
	}
	if got := Quantity(95.625, 1); got != "95.6" {
		t.Fatalf("Quantity(95.625,1)=%q, want \"95.6\"", got)
	}
}

func TestWritePDF(t *testing.T) {
	for _, withRec := range []bool{true, false} {
		var buf bytes.Buffer
		if err := WritePDF(&buf, sampleEvaluation(withRec), Options{}); err != nil {
			t.Fatalf("WritePDF(rec=%v): %v", withRec, err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
			t.Fatalf("output is not a PDF: %q", buf.Bytes()[:min(16, buf.Len())])
		}
	}
}

// pdfText encodes s the way gofpdf writes UTF-8 font text into a content stream.
func pdfText(s string) []byte {
	var b []byte
	for _, u := range utf16.Encode([]rune(s)) {
		b = binary.BigEndian.AppendUint16(b, u)
	}
	return b
}

func TestWritePDF_DefaultFontKeepsCyrillicNames(t *testing.T) {
	d := newPDFDoc(Options{})
	d.pdf.SetCompression(false)

	var buf bytes.Buffer
	if err := d.write(&buf, sampleEvaluation(true)); err != nil {
		t.Fatalf("write: %v", err)
	}
	for _, name := range []string{"Муссон 600", "Муссон 300", "кирпич", "берёза"} {
		if !bytes.Contains(buf.Bytes(), pdfText(name)) {
			t.Fatalf("%q not found in the PDF text", name)
		}
	}
	if bytes.Contains(buf.Bytes(), []byte("...... 600")) {
		t.Fatalf("model name rendered as placeholders")
	}
}

func TestWritePDF_MissingFont(t *testing.T) {
	var buf bytes.Buffer
	err := WritePDF(&buf, sampleEvaluation(true), Options{FontPath: "/nonexistent/font.ttf"})
	if err == nil {
		t.Fatalf("expected error for missing font file")
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sampleEvaluation(true)); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetComparison)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Model" || rows[1][0] != "Муссон 300" || rows[2][6] != "yes" {
		t.Fatalf("unexpected comparison rows: %v", rows)
	}

	model, err := f.GetCellValue(SheetSummary, "B8")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if model != "Муссон 600" {
		t.Fatalf("summary recommended model = %q", model)
	}
}

func TestWriteXLSX_NoneSuitable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sampleEvaluation(false)); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer f.Close()

	got, _ := f.GetCellValue(SheetSummary, "B8")
	if got != "none suitable" {
		t.Fatalf("expected none suitable marker, got %q", got)
	}
}
