// Package pdf implementa el reporte PDF del listado de registros de
// emergencias usando Maroto v2.
//
// Layout de la página A4 apaisada:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  TÍTULO: Registros de Emergencias │ alcance + rango + fecha  │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Hospital | Atenc. | Ingr. | A.Vol. | ...     │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TOTALES                                                     │
//	└──────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/emergencias-api/internal/application/export"
	"github.com/tu-usuario/emergencias-api/internal/application/records"
	"github.com/tu-usuario/emergencias-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 110, Blue: 253}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// Anchos de columna (suma 12, la grilla de Maroto).
var tableCols = []struct {
	width  int
	header string
}{
	{1, "Fecha"},
	{3, "Hospital"},
	{1, "Atenc."},
	{1, "Ingr."},
	{1, "A. Vol."},
	{1, "Trasl."},
	{1, "Defunc."},
	{3, "Eventualidades"},
}

// MarotoReportGenerator implementa export.RecordPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

var _ export.RecordPDFGenerator = (*MarotoReportGenerator)(nil)

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateRecordsPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateRecordsPDF(res *export.Result) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Registros de Emergencias", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(res.Meta)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range res.Records {
		m.AddRows(tableDetailRow(r))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(res.Records))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRows título, alcance efectivo, rango y fecha de generación.
func headerRows(meta export.Meta) []core.Row {
	rango := "Todo el histórico"
	if meta.Desde != "" || meta.Hasta != "" {
		rango = meta.Desde + " – " + meta.Hasta
	}
	if meta.DateFallback {
		rango += " (sin resultados con fechas; exportado sin filtro de fecha)"
	}
	return []core.Row{
		row.New(10).Add(
			col.New(8).Add(
				text.New("Registros de Emergencias", props.Text{
					Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
				}),
			),
			col.New(4).Add(
				text.New("Generado: "+meta.GeneratedAt.Format("2006-01-02 15:04"), props.Text{
					Size: 8, Align: align.Right, Color: colorGray, Top: 2,
				}),
			),
		),
		row.New(6).Add(
			col.New(8).Add(
				text.New(fmt.Sprintf("Hospital: %s | %d registros", meta.Scope, meta.Count), props.Text{
					Size: 9, Color: colorGray,
				}),
			),
			col.New(4).Add(
				text.New(rango, props.Text{Size: 8, Align: align.Right, Color: colorGray}),
			),
		),
	}
}

func tableHeaderRow() core.Row {
	r := row.New(7).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
	for _, c := range tableCols {
		r.Add(col.New(c.width).Add(
			text.New(c.header, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorWhite,
				Align: align.Center, Top: 1,
			}),
		))
	}
	return r
}

func tableDetailRow(rec *entity.EmergencyRecord) core.Row {
	cells := []string{
		records.FormatFecha(rec.Fecha),
		rec.Hospital,
		strconv.Itoa(rec.Atenciones),
		strconv.Itoa(rec.Ingresos),
		strconv.Itoa(rec.AltaVoluntaria),
		strconv.Itoa(rec.Traslados),
		strconv.Itoa(rec.Defunciones),
		rec.Eventualidades,
	}
	r := row.New(6)
	for i, c := range tableCols {
		alignment := align.Left
		if i >= 2 && i <= 6 {
			alignment = align.Right
		}
		r.Add(col.New(c.width).Add(
			text.New(cells[i], props.Text{Size: 7.5, Align: alignment, Top: 1}),
		))
	}
	return r
}

func totalsRow(list []*entity.EmergencyRecord) core.Row {
	var atenciones, ingresos, altas, traslados, defunciones int
	for _, r := range list {
		atenciones += r.Atenciones
		ingresos += r.Ingresos
		altas += r.AltaVoluntaria
		traslados += r.Traslados
		defunciones += r.Defunciones
	}
	totals := []string{
		"", "Totales",
		strconv.Itoa(atenciones), strconv.Itoa(ingresos), strconv.Itoa(altas),
		strconv.Itoa(traslados), strconv.Itoa(defunciones), "",
	}
	r := row.New(7)
	for i, c := range tableCols {
		style := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right, Top: 1}
		r.Add(col.New(c.width).Add(text.New(totals[i], style)))
	}
	return r
}
