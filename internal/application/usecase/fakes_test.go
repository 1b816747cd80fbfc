package usecase_test

import (
	"sort"
	"time"

	"github.com/tu-usuario/emergencias-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeHospitalRepo struct {
	byID map[string]*entity.Hospital
}

func newFakeHospitalRepo() *fakeHospitalRepo {
	return &fakeHospitalRepo{byID: make(map[string]*entity.Hospital)}
}

func (f *fakeHospitalRepo) seed(nombre string, activo bool) *entity.Hospital {
	h := &entity.Hospital{ID: nombre + "-id", Nombre: nombre, Activo: activo, CreatedAt: time.Now()}
	f.byID[h.ID] = h
	return h
}

func (f *fakeHospitalRepo) Create(h *entity.Hospital) error {
	cp := *h
	f.byID[h.ID] = &cp
	return nil
}

func (f *fakeHospitalRepo) GetByID(id string) (*entity.Hospital, error) {
	h, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *h
	return &cp, nil
}

func (f *fakeHospitalRepo) GetByNombre(nombre string) (*entity.Hospital, error) {
	for _, h := range f.byID {
		if h.Nombre == nombre {
			cp := *h
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeHospitalRepo) Update(h *entity.Hospital) error {
	cp := *h
	f.byID[h.ID] = &cp
	return nil
}

func (f *fakeHospitalRepo) List() ([]*entity.Hospital, error) {
	var out []*entity.Hospital
	for _, h := range f.byID {
		cp := *h
		out = append(out, &cp)
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
	for _, h := range f.byID {
		if h.Activo {
			cp := *h
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (f *fakeHospitalRepo) Count() (int, error) { return len(f.byID), nil }

type fakeUserRepo struct {
	byID map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.byID {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		iAdmin, jAdmin := out[i].IsAdmin(), out[j].IsAdmin()
		if iAdmin != jAdmin {
			return iAdmin
		}
		return out[i].Username < out[j].Username
	})
	return out, nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeUserRepo) Count() (int, error) { return len(f.byID), nil }
