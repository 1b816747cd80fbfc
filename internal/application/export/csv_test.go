package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/emergencias-api/internal/application/export"
	"github.com/tu-usuario/emergencias-api/internal/domain/entity"
)

func fecha(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestWriteCSV_BOMCabeceraYRoundTrip(t *testing.T) {
	list := []*entity.EmergencyRecord{
		{
			ID: "r1", Fecha: fecha("2024-01-01"), Hospital: "Hospital Regional Juan Pablo Pina",
			Atenciones: 42, Ingresos: 7, AltaVoluntaria: 1, Traslados: 2, Defunciones: 0,
			MotivoTraslado:     "cirugía cardiovascular",
			HospitalReferencia: "Hospital Central",
			Eventualidades:     "sin novedad",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, list))

	raw := buf.Bytes()
	require.True(t, bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}),
		"el CSV debe empezar con BOM UTF-8 para que Excel detecte la codificación")

	rows, err := csv.NewReader(bytes.NewReader(raw[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{
		"Fecha", "Hospital", "Atenciones", "Ingresos", "Alta Voluntario",
		"Traslados", "Motivo del traslado", "Hospital de referencia",
		"Defunciones", "Eventualidades",
	}, rows[0], "la cabecera reproduce la etiqueta histórica de los reportes")

	assert.Equal(t, "2024-01-01", rows[1][0])
	assert.Equal(t, "Hospital Regional Juan Pablo Pina", rows[1][1])
	assert.Equal(t, "42", rows[1][2])
	assert.Equal(t, "0", rows[1][8], "defunciones va en la novena columna")
	assert.Equal(t, "sin novedad", rows[1][9])
}

func TestWriteCSV_NormalizaSaltosDeLinea(t *testing.T) {
	list := []*entity.EmergencyRecord{
		{ID: "r1", Fecha: fecha("2024-01-01"), Hospital: "H1",
			Eventualidades: "línea uno\r\nlínea dos\ntres"},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, list))

	rows, err := csv.NewReader(bytes.NewReader(buf.Bytes()[3:])).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "línea uno línea dos tres", rows[1][9],
		"los saltos de línea del texto libre se aplanan a espacios")
}

func TestWriteCSV_VacioSoloCabecera(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, nil))

	rows, err := csv.NewReader(bytes.NewReader(buf.Bytes()[3:])).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
