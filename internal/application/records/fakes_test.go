package records_test

import (
	"sort"
	"time"

	"github.com/tu-usuario/emergencias-api/internal/domain/entity"
	"github.com/tu-usuario/emergencias-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso
// ──────────────────────────────────────────────────────────────────────────────

type fakeRecordRepo struct {
	byID map[string]*entity.EmergencyRecord
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{byID: make(map[string]*entity.EmergencyRecord)}
}

func (f *fakeRecordRepo) Create(rec *entity.EmergencyRecord) error {
	cp := *rec
	f.byID[rec.ID] = &cp
	return nil
}

func (f *fakeRecordRepo) GetByID(id string) (*entity.EmergencyRecord, error) {
	rec, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeRecordRepo) GetByFechaHospital(fecha time.Time, hospital string) (*entity.EmergencyRecord, error) {
	for _, rec := range f.byID {
		if rec.Fecha.Equal(fecha) && rec.Hospital == hospital {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRecordRepo) Update(rec *entity.EmergencyRecord) error {
	cp := *rec
	f.byID[rec.ID] = &cp
	return nil
}

func (f *fakeRecordRepo) List(filter repository.RecordFilter) ([]*entity.EmergencyRecord, error) {
	var out []*entity.EmergencyRecord
	for _, rec := range f.byID {
		if filter.Hospital != "" && rec.Hospital != filter.Hospital {
			continue
		}
		if filter.From != nil && rec.Fecha.Before(*filter.From) {
			continue
		}
		if filter.To != nil && rec.Fecha.After(*filter.To) {
			continue
		}
		cp := *rec
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if filter.Order == repository.OrderChronological {
			if !a.Fecha.Equal(b.Fecha) {
				return a.Fecha.Before(b.Fecha)
			}
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.ID < b.ID
		}
		if !a.Fecha.Equal(b.Fecha) {
			return a.Fecha.After(b.Fecha)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
	return out, nil
}

func (f *fakeRecordRepo) Delete(id string) error {
	delete(f.byID, id)
	return nil
}

type fakeHospitalRepo struct {
	byNombre map[string]*entity.Hospital
}

func newFakeHospitalRepo(nombres ...string) *fakeHospitalRepo {
	f := &fakeHospitalRepo{byNombre: make(map[string]*entity.Hospital)}
	for i, n := range nombres {
		f.byNombre[n] = &entity.Hospital{ID: n + "-id", Nombre: n, Activo: true, CreatedAt: time.Now().Add(time.Duration(i) * time.Second)}
	}
	return f
}

func (f *fakeHospitalRepo) Create(h *entity.Hospital) error {
	f.byNombre[h.Nombre] = h
	return nil
}

func (f *fakeHospitalRepo) GetByID(id string) (*entity.Hospital, error) {
	for _, h := range f.byNombre {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, nil
}

func (f *fakeHospitalRepo) GetByNombre(nombre string) (*entity.Hospital, error) {
	h, ok := f.byNombre[nombre]
	if !ok {
		return nil, nil
	}
	return h, nil
}

func (f *fakeHospitalRepo) Update(h *entity.Hospital) error {
	for nombre, prev := range f.byNombre {
		if prev.ID == h.ID {
			delete(f.byNombre, nombre)
			break
		}
	}
	f.byNombre[h.Nombre] = h
	return nil
}

func (f *fakeHospitalRepo) List() ([]*entity.Hospital, error) {
	var out []*entity.Hospital
	for _, h := range f.byNombre {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Activo != out[j].Activo {
			return out[i].Activo
		}
		return out[i].Nombre < out[j].Nombre
	})
	return out, nil
}

func (f *fakeHospitalRepo) ListActive() ([]*entity.Hospital, error) {
	var out []*entity.Hospital
	for _, h := range f.byNombre {
		if h.Activo {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (f *fakeHospitalRepo) Count() (int, error) { return len(f.byNombre), nil }
