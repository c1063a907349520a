package report

import (
	_ "embed"
	"fmt"
	"io"
	"path/filepath"

	"heater_sizing/internal/models"

	"github.com/phpdave11/gofpdf"
)

// Options tune document rendering.
type Options struct {
	// FontPath points to a UTF-8 TTF font used instead of the embedded
	// DejaVu Sans Condensed.
	FontPath string
}

const (
	pageMargin  = 15.0
	lineHeight  = 6.0
	chartHeight = 55.0
	chartWidth  = 180.0
	bodyFont    = "body"
)

//go:embed fonts/DejaVuSansCondensed.ttf
var fontRegular []byte

//go:embed fonts/DejaVuSansCondensed-Bold.ttf
var fontBold []byte

type pdfDoc struct {
	pdf    *gofpdf.Fpdf
	family string
}

func newPDFDoc(opts Options) *pdfDoc {
	fontDir := ""
	if opts.FontPath != "" {
		fontDir = filepath.Dir(opts.FontPath)
	}
	pdf := gofpdf.New("P", "mm", "A4", fontDir)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)

	if opts.FontPath != "" {
		pdf.AddUTF8Font(bodyFont, "", filepath.Base(opts.FontPath))
		pdf.AddUTF8Font(bodyFont, "B", filepath.Base(opts.FontPath))
	} else {
		pdf.AddUTF8FontFromBytes(bodyFont, "", fontRegular)
		pdf.AddUTF8FontFromBytes(bodyFont, "B", fontBold)
	}
	return &pdfDoc{pdf: pdf, family: bodyFont}
}

// WritePDF renders an evaluation report: inputs, comparison table, power and
// energy charts, and the recommendation or the no-suitable-model notice.
func WritePDF(w io.Writer, ev models.Evaluation, opts Options) error {
	return newPDFDoc(opts).write(w, ev)
}

func (d *pdfDoc) write(w io.Writer, ev models.Evaluation) error {
	d.pdf.AddPage()

	d.title("Heater sizing report")
	d.text(fmt.Sprintf("Evaluation %s, %s", ev.ID, ev.EvaluatedAt.UTC().Format("2006-01-02 15:04 MST")))
	d.pdf.Ln(4)

	d.inputs(ev)
	d.metrics(ev.Result)
	d.table(ev.Result)
	d.powerChart(ev.Result)
	d.energyChart(ev.Result)
	d.recommendation(ev.Result)

	if err := d.pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func (d *pdfDoc) title(s string) {
	d.pdf.SetFont(d.family, "B", 16)
	d.pdf.CellFormat(0, 10, s, "", 1, "L", false, 0, "")
}

func (d *pdfDoc) heading(s string) {
	d.pdf.Ln(2)
	d.pdf.SetFont(d.family, "B", 12)
	d.pdf.CellFormat(0, 8, s, "", 1, "L", false, 0, "")
	d.pdf.SetFont(d.family, "", 10)
}

func (d *pdfDoc) text(s string) {
	d.pdf.SetFont(d.family, "", 10)
	d.pdf.CellFormat(0, lineHeight, s, "", 1, "L", false, 0, "")
}

func (d *pdfDoc) pair(label, value string) {
	d.pdf.CellFormat(70, lineHeight, label, "", 0, "L", false, 0, "")
	d.pdf.CellFormat(0, lineHeight, value, "", 1, "L", false, 0, "")
}

func (d *pdfDoc) inputs(ev models.Evaluation) {
	b, f := ev.Building, ev.Fuel
	roof := "no"
	if b.RoofInsulated {
		roof = "yes"
	}

	d.heading("Building")
	d.pair("Floor area", Quantity(b.AreaM2, 1)+" m2")
	d.pair("Ceiling height", Quantity(b.HeightM, 2)+" m")
	d.pair("Wall material", b.Material)
	d.pair("Wall thickness", Quantity(b.WallThicknessM*100, 0)+" cm")
	d.pair("Windows / doors", Quantity(b.WindowsM2, 1)+" / "+Quantity(b.DoorsM2, 1)+" m2")
	d.pair("Insulated roof", roof)
	d.pair("Indoor / outdoor", Quantity(b.IndoorTempC, 0)+" / "+Quantity(b.OutdoorTempC, 0)+" C")

	d.heading("Fuel")
	d.pair("Fuel", f.Fuel)
	d.pair("Price per m3", Money(f.WoodPricePerM3))
	d.pair("Firebox fill", Quantity(f.FillFraction*100, 0)+" %")
	d.pair("Boiler efficiency", Quantity(f.Efficiency*100, 0)+" %")
	d.pair("Burn time per load", Quantity(f.BurnHours, 0)+" h")
	d.pair("Working day", Quantity(f.WorkingDayHours, 0)+" h")
}

func (d *pdfDoc) metrics(r models.EvaluationResult) {
	d.heading("Results")
	d.pair("Heat loss", Quantity(r.HeatLossKW, 1)+" kW")
	d.pair("Required power", Quantity(r.RequiredPowerKW, 1)+" kW")
	d.pair("Heated volume", Quantity(r.VolumeM3, 0)+" m3")
}

var tableColumns = []struct {
	title string
	width float64
	align string
}{
	{"Model", 45, "L"},
	{"Power, kW", 25, "R"},
	{"Energy, kWh", 27, "R"},
	{"Wood/load, kg", 30, "R"},
	{"Price", 26, "R"},
	{"Fit", 27, "C"},
}

func (d *pdfDoc) table(r models.EvaluationResult) {
	d.heading("Model comparison")
	d.pdf.SetFont(d.family, "B", 9)
	d.pdf.SetFillColor(230, 230, 230)
	for _, c := range tableColumns {
		d.pdf.CellFormat(c.width, 7, c.title, "1", 0, c.align, true, 0, "")
	}
	d.pdf.Ln(-1)

	d.pdf.SetFont(d.family, "", 9)
	for _, row := range r.Rows {
		fit := "underpowered"
		if row.Suitable {
			fit = "suitable"
		}
		cells := []string{
			row.Model,
			Quantity(row.PowerKW, 1),
			Quantity(row.EnergyKWh, 0),
			Quantity(row.WoodPerLoadKg, 1),
			Money(row.Price),
			fit,
		}
		for i, c := range tableColumns {
			d.pdf.CellFormat(c.width, 6, cells[i], "1", 0, c.align, false, 0, "")
		}
		d.pdf.Ln(-1)
	}
}

// bars draws a simple bar chart. Values below zero are drawn as empty bars.
func (d *pdfDoc) bars(title string, labels []string, values []float64, color func(i int) (int, int, int), refLine float64) {
	d.heading(title)
	if len(values) == 0 {
		return
	}
	if d.pdf.GetY()+chartHeight+12 > 297-pageMargin {
		d.pdf.AddPage()
	}

	top := d.pdf.GetY()
	left := pageMargin
	maxV := refLine
	for _, v := range values {
		if v > maxV {
			maxV = v
		}
	}
	if maxV <= 0 {
		maxV = 1
	}

	slot := chartWidth / float64(len(values))
	barW := slot * 0.6
	base := top + chartHeight

	d.pdf.SetDrawColor(0, 0, 0)
	d.pdf.Line(left, base, left+chartWidth, base)

	d.pdf.SetFont(d.family, "", 8)
	for i, v := range values {
		h := 0.0
		if v > 0 {
			h = v / maxV * chartHeight
		}
		x := left + float64(i)*slot + (slot-barW)/2
		r, g, b := color(i)
		d.pdf.SetFillColor(r, g, b)
		d.pdf.Rect(x, base-h, barW, h, "F")

		d.pdf.SetXY(x-2, base-h-5)
		d.pdf.CellFormat(barW+4, 4, Quantity(v, 1), "", 0, "C", false, 0, "")
		d.pdf.SetXY(left+float64(i)*slot, base+1)
		d.pdf.CellFormat(slot, 4, labels[i], "", 0, "C", false, 0, "")
	}

	if refLine > 0 {
		y := base - refLine/maxV*chartHeight
		d.pdf.SetDrawColor(0, 0, 255)
		d.pdf.SetDashPattern([]float64{2, 1}, 0)
		d.pdf.Line(left, y, left+chartWidth, y)
		d.pdf.SetDashPattern([]float64{}, 0)
		d.pdf.SetXY(left, y-5)
		d.pdf.SetTextColor(0, 0, 255)
		d.pdf.CellFormat(chartWidth, 4, "required "+Quantity(refLine, 1)+" kW", "", 0, "R", false, 0, "")
		d.pdf.SetTextColor(0, 0, 0)
		d.pdf.SetDrawColor(0, 0, 0)
	}

	d.pdf.SetXY(left, base+7)
}

func (d *pdfDoc) powerChart(r models.EvaluationResult) {
	labels := make([]string, len(r.Rows))
	values := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		labels[i], values[i] = row.Model, row.PowerKW
	}
	d.bars("Power by model, kW", labels, values, func(i int) (int, int, int) {
		if r.Rows[i].Suitable {
			return 60, 170, 60
		}
		return 210, 60, 60
	}, r.RequiredPowerKW)
}

func (d *pdfDoc) energyChart(r models.EvaluationResult) {
	labels := make([]string, len(r.Rows))
	values := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		labels[i], values[i] = row.Model, row.EnergyKWh
	}
	d.bars("Useful energy per load, kWh", labels, values, func(int) (int, int, int) {
		return 245, 160, 40
	}, 0)
}

func (d *pdfDoc) recommendation(r models.EvaluationResult) {
	d.heading("Recommendation")
	if r.NoneSuitable || r.Recommendation == nil {
		d.pdf.SetTextColor(200, 0, 0)
		d.text("No model covers the heat loss with the current settings.")
		d.pdf.SetTextColor(0, 0, 0)
		return
	}
	rec := r.Recommendation
	d.pair("Model", rec.Model)
	d.pair("Price", Money(rec.Price))
	d.pair("Burn time per load", Quantity(rec.EffectiveBurnHours, 1)+" h")
	d.pair("Loads per day", fmt.Sprintf("%d", rec.LoadsPerDay))
	d.pair("Fuel per day / month", Quantity(rec.DailyFuelKg, 1)+" / "+Quantity(rec.MonthlyFuelKg, 1)+" kg")
	d.pair("Fuel per day by heat demand", Quantity(rec.DemandDailyFuelKg, 1)+" kg")
	d.pair("Cost per kg", Money(rec.CostPerKg))
	d.pair("Cost per day / month", Money(rec.DailyCost)+" / "+Money(rec.MonthlyCost))
}
