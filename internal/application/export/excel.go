package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// FilenameXLSX nombre del archivo descargado.
const FilenameXLSX = "registros_emergencias.xlsx"

// MIMETypeXLSX tipo MIME del contenedor OOXML.
const MIMETypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	sheetResumen   = "Resumen"
	sheetRegistros = "Registros"
)

// Columnas (1-based) por tipo de formato.
var (
	colFecha    = 1
	colsNumeric = []int{3, 4, 5, 6, 9}
	colsWrap    = []int{7, 8, 10}
	colWidths   = map[int]float64{1: 12, 2: 38, 3: 12, 4: 12, 5: 16, 6: 12, 7: 28, 8: 28, 9: 12, 10: 50}
)

// BuildWorkbook arma el libro: hoja Resumen (metadatos de la exportación)
// primero y hoja Registros con cabecera formateada, filas tipadas, fila de
// totales con fórmulas SUM vivas, anchos fijos, panel congelado y autofiltro.
func BuildWorkbook(res *Result) (*excelize.File, error) {
	f := excelize.NewFile()

	// La hoja por defecto pasa a ser Resumen para que quede primera.
	if err := f.SetSheetName("Sheet1", sheetResumen); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if _, err := f.NewSheet(sheetRegistros); err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja de registros: %w", err)
	}

	if err := writeRegistros(f, res); err != nil {
		return nil, err
	}
	if err := writeResumen(f, res.Meta); err != nil {
		return nil, err
	}
	return f, nil
}

func writeRegistros(f *excelize.File, res *Result) error {
	styles, err := newStyles(f)
	if err != nil {
		return err
	}

	// Cabecera
	for c, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		if err := f.SetCellValue(sheetRegistros, cell, h); err != nil {
			return fmt.Errorf("xlsx: cabecera: %w", err)
		}
	}
	lastColName, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.SetCellStyle(sheetRegistros, "A1", lastColName+"1", styles.header); err != nil {
		return fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}

	// Datos
	const rowStart = 2
	for i, r := range res.Records {
		row := rowStart + i
		values := []any{
			r.Fecha, r.Hospital, r.Atenciones, r.Ingresos, r.AltaVoluntaria,
			r.Traslados, flattenText(r.MotivoTraslado), flattenText(r.HospitalReferencia),
			r.Defunciones, flattenText(r.Eventualidades),
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			if err := f.SetCellValue(sheetRegistros, cell, v); err != nil {
				return fmt.Errorf("xlsx: fila %d: %w", row, err)
			}
		}
	}
	lastDataRow := rowStart + len(res.Records) - 1
	lastRow := lastDataRow

	if len(res.Records) > 0 {
		applyColumnStyle(f, styles.fecha, []int{colFecha}, rowStart, lastDataRow)
		applyColumnStyle(f, styles.numero, colsNumeric, rowStart, lastDataRow)
		applyColumnStyle(f, styles.texto, colsWrap, rowStart, lastDataRow)
		applyColumnStyle(f, styles.borde, []int{2}, rowStart, lastDataRow)

		// Fila de totales: fórmulas vivas, no constantes precalculadas.
		totalRow := lastDataRow + 1
		labelCell, _ := excelize.CoordinatesToCellName(1, totalRow)
		if err := f.SetCellValue(sheetRegistros, labelCell, "Totales"); err != nil {
			return fmt.Errorf("xlsx: totales: %w", err)
		}
		_ = f.SetCellStyle(sheetRegistros, labelCell, labelCell, styles.totalLabel)
		for _, c := range colsNumeric {
			colName, _ := excelize.ColumnNumberToName(c)
			cell, _ := excelize.CoordinatesToCellName(c, totalRow)
			formula := fmt.Sprintf("SUM(%s%d:%s%d)", colName, rowStart, colName, lastDataRow)
			if err := f.SetCellFormula(sheetRegistros, cell, formula); err != nil {
				return fmt.Errorf("xlsx: fórmula totales: %w", err)
			}
			_ = f.SetCellStyle(sheetRegistros, cell, cell, styles.totalNum)
		}
		lastRow = totalRow
	}

	// Anchos fijos, panel congelado bajo la cabecera y autofiltro hasta totales.
	for c, w := range colWidths {
		colName, _ := excelize.ColumnNumberToName(c)
		if err := f.SetColWidth(sheetRegistros, colName, colName, w); err != nil {
			return fmt.Errorf("xlsx: ancho de columna: %w", err)
		}
	}
	if err := f.SetPanes(sheetRegistros, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return fmt.Errorf("xlsx: congelar cabecera: %w", err)
	}
	filterRef := fmt.Sprintf("A1:%s%d", lastColName, lastRow)
	if err := f.AutoFilter(sheetRegistros, filterRef, nil); err != nil {
		return fmt.Errorf("xlsx: autofiltro: %w", err)
	}
	return nil
}

func writeResumen(f *excelize.File, meta Meta) error {
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return fmt.Errorf("xlsx: estilo resumen: %w", err)
	}
	set := func(cell string, v any) {
		_ = f.SetCellValue(sheetResumen, cell, v)
	}
	set("A1", "Exportación de Registros de Emergencias")
	_ = f.SetCellStyle(sheetResumen, "A1", "A1", titleStyle)

	set("A3", "Generado:")
	set("B3", meta.GeneratedAt.Format("2006-01-02 15:04"))
	set("A4", "Hospital:")
	set("B4", meta.Scope)
	set("A5", "Desde:")
	set("B5", meta.Desde)
	set("A6", "Hasta:")
	set("B6", meta.Hasta)
	set("A7", "Registros exportados:")
	set("B7", meta.Count)

	set("A9", "Notas:")
	notas := "—"
	if len(meta.Notes) > 0 {
		notas = strings.Join(meta.Notes, "\n")
	}
	set("B9", notas)

	_ = f.SetColWidth(sheetResumen, "A", "A", 20)
	_ = f.SetColWidth(sheetResumen, "B", "B", 60)
	return nil
}

// ── Estilos ───────────────────────────────────────────────────────────────────

type sheetStyles struct {
	header     int
	fecha      int
	numero     int
	texto      int
	borde      int
	totalLabel int
	totalNum   int
}

func thinBorders() []excelize.Border {
	const color = "D0D7E2"
	return []excelize.Border{
		{Type: "left", Color: color, Style: 1},
		{Type: "right", Color: color, Style: 1},
		{Type: "top", Color: color, Style: 1},
		{Type: "bottom", Color: color, Style: 1},
	}
}

func newStyles(f *excelize.File) (*sheetStyles, error) {
	numFmt := "#,##0"
	dateFmt := "yyyy-mm-dd"

	header, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"0D6EFD"}},
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}
	fecha, err := f.NewStyle(&excelize.Style{
		CustomNumFmt: &dateFmt,
		Alignment:    &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:       thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo fecha: %w", err)
	}
	numero, err := f.NewStyle(&excelize.Style{
		CustomNumFmt: &numFmt,
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:       thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo número: %w", err)
	}
	texto, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo texto: %w", err)
	}
	borde, err := f.NewStyle(&excelize.Style{Border: thinBorders()})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo borde: %w", err)
	}
	totalLabel, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "right"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E9F2FF"}},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo totales: %w", err)
	}
	totalNum, err := f.NewStyle(&excelize.Style{
		CustomNumFmt: &numFmt,
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Fill:         excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E9F2FF"}},
		Border:       thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo totales: %w", err)
	}

	return &sheetStyles{
		header: header, fecha: fecha, numero: numero, texto: texto,
		borde: borde, totalLabel: totalLabel, totalNum: totalNum,
	}, nil
}

func applyColumnStyle(f *excelize.File, style int, cols []int, fromRow, toRow int) {
	for _, c := range cols {
		top, _ := excelize.CoordinatesToCellName(c, fromRow)
		bottom, _ := excelize.CoordinatesToCellName(c, toRow)
		_ = f.SetCellStyle(sheetRegistros, top, bottom, style)
	}
}
