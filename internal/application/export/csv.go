package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tu-usuario/emergencias-api/internal/application/records"
	"github.com/tu-usuario/emergencias-api/internal/domain/entity"
)

// FilenameCSV nombre del archivo descargado.
const FilenameCSV = "registros_emergencias.csv"

// Columnas en orden fijo; lo comparten CSV, XLSX y PDF. "Alta Voluntario"
// conserva la etiqueta histórica de los reportes aunque la columna de la
// base se llame alta_voluntaria.
var headers = []string{
	"Fecha", "Hospital", "Atenciones", "Ingresos", "Alta Voluntario",
	"Traslados", "Motivo del traslado", "Hospital de referencia",
	"Defunciones", "Eventualidades",
}

// utf8BOM hace que las hojas de cálculo detecten UTF-8 al abrir el CSV.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV escribe los registros como CSV (UTF-8 con BOM, cabecera fija,
// fechas YYYY-MM-DD, saltos de línea en texto normalizados a espacios).
func WriteCSV(w io.Writer, list []*entity.EmergencyRecord) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("csv: escribir BOM: %w", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("csv: escribir cabecera: %w", err)
	}
	for _, r := range list {
		if err := cw.Write(recordRow(r)); err != nil {
			return fmt.Errorf("csv: escribir fila: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// recordRow serializa un registro en el orden fijo de columnas.
func recordRow(r *entity.EmergencyRecord) []string {
	return []string{
		records.FormatFecha(r.Fecha),
		r.Hospital,
		strconv.Itoa(r.Atenciones),
		strconv.Itoa(r.Ingresos),
		strconv.Itoa(r.AltaVoluntaria),
		strconv.Itoa(r.Traslados),
		flattenText(r.MotivoTraslado),
		flattenText(r.HospitalReferencia),
		strconv.Itoa(r.Defunciones),
		flattenText(r.Eventualidades),
	}
}

// flattenText reemplaza CR/LF por espacios para que la fila quede en una línea.
func flattenText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}
