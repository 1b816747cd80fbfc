package export_test

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/emergencias-api/internal/application/export"
	"github.com/tu-usuario/emergencias-api/internal/application/records"
	"github.com/tu-usuario/emergencias-api/internal/domain/entity"
	"github.com/tu-usuario/emergencias-api/internal/domain/repository"
)

var (
	admin = entity.Actor{ID: "admin-1", Role: entity.RoleAdmin}
	userA = entity.Actor{ID: "user-1", Role: entity.RoleUser, Hospital: "H1"}
)

// memRecordRepo solo implementa la consulta; las exportaciones no escriben.
type memRecordRepo struct {
	records []*entity.EmergencyRecord
}

func (m *memRecordRepo) Create(rec *entity.EmergencyRecord) error { return nil }
func (m *memRecordRepo) GetByID(id string) (*entity.EmergencyRecord, error) {
	return nil, nil
}
func (m *memRecordRepo) GetByFechaHospital(f time.Time, hospital string) (*entity.EmergencyRecord, error) {
	return nil, nil
}
func (m *memRecordRepo) Update(rec *entity.EmergencyRecord) error { return nil }
func (m *memRecordRepo) Delete(id string) error { return nil }

func (m *memRecordRepo) List(filter repository.RecordFilter) ([]*entity.EmergencyRecord, error) {
	var out []*entity.EmergencyRecord
	for _, rec := range m.records {
		if filter.Hospital != "" && rec.Hospital != filter.Hospital {
			continue
		}
		if filter.From != nil && rec.Fecha.Before(*filter.From) {
			continue
		}
		if filter.To != nil && rec.Fecha.After(*filter.To) {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Fecha.Before(out[j].Fecha) })
	return out, nil
}

type memHospitalRepo struct{}

func (memHospitalRepo) Create(h *entity.Hospital) error { return nil }
func (memHospitalRepo) GetByID(id string) (*entity.Hospital, error) { return nil, nil }
func (memHospitalRepo) GetByNombre(nombre string) (*entity.Hospital, error) {
	return &entity.Hospital{ID: nombre, Nombre: nombre, Activo: true}, nil
}
func (memHospitalRepo) Update(h *entity.Hospital) error { return nil }
func (memHospitalRepo) List() ([]*entity.Hospital, error) { return nil, nil }
func (memHospitalRepo) ListActive() ([]*entity.Hospital, error) { return nil, nil }
func (memHospitalRepo) Count() (int, error) { return 0, nil }

func newExportUseCase(recs ...*entity.EmergencyRecord) *export.UseCase {
	recordsUC := records.NewUseCase(&memRecordRepo{records: recs}, memHospitalRepo{})
	return export.NewUseCase(recordsUC)
}

func TestRun_ConjuntoFiltradoCronologico(t *testing.T) {
	uc := newExportUseCase(
		&entity.EmergencyRecord{ID: "r2", Fecha: fecha("2024-01-05"), Hospital: "H1"},
		&entity.EmergencyRecord{ID: "r1", Fecha: fecha("2024-01-01"), Hospital: "H1"},
		&entity.EmergencyRecord{ID: "r3", Fecha: fecha("2024-01-09"), Hospital: "H2"},
	)

	res, err := uc.Run(admin, "H1", "2024-01-01", "2024-01-31")
	require.NoError(t, err)

	require.Len(t, res.Records, 2)
	assert.Equal(t, "r1", res.Records[0].ID, "las exportaciones salen en orden cronológico")
	assert.Equal(t, "r2", res.Records[1].ID)
	assert.Equal(t, "H1", res.Meta.Scope)
	assert.Equal(t, 2, res.Meta.Count)
	assert.False(t, res.Meta.DateFallback)
}

func TestRun_ReintentoSinFechasCuandoElRangoQuedaVacio(t *testing.T) {
	uc := newExportUseCase(
		&entity.EmergencyRecord{ID: "r1", Fecha: fecha("2024-01-01"), Hospital: "H1"},
		&entity.EmergencyRecord{ID: "r2", Fecha: fecha("2024-02-01"), Hospital: "H2"},
	)

	// Rango futuro sin datos: se reintenta sin fechas conservando el alcance.
	res, err := uc.Run(admin, "", "2099-01-01", "2099-12-31")
	require.NoError(t, err)

	require.Len(t, res.Records, 2, "el reintento sin fechas devuelve todo el alcance")
	assert.True(t, res.Meta.DateFallback)
	require.NotEmpty(t, res.Meta.Notes)
	assert.Contains(t, res.Meta.Notes[0], "Sin resultados con fechas")
	assert.Equal(t, "2099-01-01", res.Meta.Desde, "las cotas pedidas se conservan en los metadatos")
}

func TestRun_ReintentoConservaAlcancePorRol(t *testing.T) {
	uc := newExportUseCase(
		&entity.EmergencyRecord{ID: "r1", Fecha: fecha("2024-01-01"), Hospital: "H1"},
		&entity.EmergencyRecord{ID: "r2", Fecha: fecha("2024-01-01"), Hospital: "H2"},
	)

	res, err := uc.Run(userA, "", "2099-01-01", "2099-12-31")
	require.NoError(t, err)

	require.Len(t, res.Records, 1,
		"el reintento sin fechas sigue acotado al hospital del usuario")
	assert.Equal(t, "H1", res.Records[0].Hospital)
	assert.Equal(t, "H1", res.Meta.Scope)
}

func TestRun_SinDatosNiFechasNoReintenta(t *testing.T) {
	uc := newExportUseCase()

	res, err := uc.Run(admin, "", "", "")
	require.NoError(t, err)
	assert.Empty(t, res.Records)
	assert.False(t, res.Meta.DateFallback, "sin filtros de fecha no hay nada que reintentar")
	assert.Equal(t, "Todos", res.Meta.Scope)
}

func TestRun_NotasDeFiltrosAplicados(t *testing.T) {
	uc := newExportUseCase(
		&entity.EmergencyRecord{ID: "r1", Fecha: fecha("2024-01-01"), Hospital: "H1"},
	)

	res, err := uc.Run(admin, "H1", "2024-01-01", "")
	require.NoError(t, err)
	require.NotEmpty(t, res.Meta.Notes)
	assert.Contains(t, res.Meta.Notes[0], "Filtro hospital 'H1'")
	assert.Contains(t, res.Meta.Notes[0], "Desde 2024-01-01")
}
