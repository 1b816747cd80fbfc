package export_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/emergencias-api/internal/application/export"
	"github.com/tu-usuario/emergencias-api/internal/domain/entity"
)

func sampleResult() *export.Result {
	return &export.Result{
		Records: []*entity.EmergencyRecord{
			{ID: "r1", Fecha: fecha("2024-01-01"), Hospital: "H1",
				Atenciones: 10, Ingresos: 2, AltaVoluntaria: 1, Traslados: 1, Defunciones: 0},
			{ID: "r2", Fecha: fecha("2024-01-02"), Hospital: "H1",
				Atenciones: 20, Ingresos: 3, AltaVoluntaria: 0, Traslados: 2, Defunciones: 1},
		},
		Meta: export.Meta{
			GeneratedAt: time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC),
			Scope:       "H1",
			Count:       2,
		},
	}
}

func TestBuildWorkbook_HojasYOrden(t *testing.T) {
	f, err := export.BuildWorkbook(sampleResult())
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Resumen", "Registros"}, f.GetSheetList(),
		"Resumen debe ser la primera hoja del libro")
}

func TestBuildWorkbook_RegistrosYTotalesConFormulas(t *testing.T) {
	f, err := export.BuildWorkbook(sampleResult())
	require.NoError(t, err)
	defer f.Close()

	hospital, err := f.GetCellValue("Registros", "B2")
	require.NoError(t, err)
	assert.Equal(t, "H1", hospital)

	atenciones, err := f.GetCellValue("Registros", "C3")
	require.NoError(t, err)
	assert.Equal(t, "20", atenciones)

	// Fila de totales: etiqueta + fórmulas SUM vivas en las columnas numéricas.
	label, err := f.GetCellValue("Registros", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Totales", label)

	formula, err := f.GetCellFormula("Registros", "C4")
	require.NoError(t, err)
	assert.Equal(t, "SUM(C2:C3)", formula, "los totales deben ser fórmulas, no constantes")

	formula, err = f.GetCellFormula("Registros", "I4")
	require.NoError(t, err)
	assert.Equal(t, "SUM(I2:I3)", formula)

	// Las columnas de texto libre no llevan fórmula de total.
	formula, err = f.GetCellFormula("Registros", "G4")
	require.NoError(t, err)
	assert.Empty(t, formula)
}

func TestBuildWorkbook_ResumenConMetadatos(t *testing.T) {
	res := sampleResult()
	res.Meta.Desde = "2024-01-01"
	res.Meta.Hasta = "2024-01-31"
	res.Meta.Notes = []string{"Filtros aplicados: Desde 2024-01-01; Hasta 2024-01-31"}

	f, err := export.BuildWorkbook(res)
	require.NoError(t, err)
	defer f.Close()

	titulo, _ := f.GetCellValue("Resumen", "A1")
	assert.Equal(t, "Exportación de Registros de Emergencias", titulo)

	scope, _ := f.GetCellValue("Resumen", "B4")
	assert.Equal(t, "H1", scope)
	desde, _ := f.GetCellValue("Resumen", "B5")
	assert.Equal(t, "2024-01-01", desde)
	count, _ := f.GetCellValue("Resumen", "B7")
	assert.Equal(t, "2", count)
	notas, _ := f.GetCellValue("Resumen", "B9")
	assert.Contains(t, notas, "Filtros aplicados")
}

func TestBuildWorkbook_SinRegistros(t *testing.T) {
	f, err := export.BuildWorkbook(&export.Result{
		Meta: export.Meta{GeneratedAt: time.Now(), Scope: "Todos"},
	})
	require.NoError(t, err)
	defer f.Close()

	// Solo cabecera, sin fila de totales.
	h, _ := f.GetCellValue("Registros", "A1")
	assert.Equal(t, "Fecha", h)
	label, _ := f.GetCellValue("Registros", "A2")
	assert.Empty(t, label)
}
