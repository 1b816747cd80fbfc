package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/emergencias-api/internal/application/dto"
	"github.com/tu-usuario/emergencias-api/internal/domain"
	"github.com/tu-usuario/emergencias-api/internal/domain/entity"
	"github.com/tu-usuario/emergencias-api/internal/domain/repository"
)

// HospitalUseCase casos de uso del catálogo de hospitales.
// La unicidad del nombre es exacta (sensible a mayúsculas) y se verifica
// contra todo el catálogo, activos e inactivos.
type HospitalUseCase struct {
	repo repository.HospitalRepository
}

// NewHospitalUseCase construye el caso de uso.
func NewHospitalUseCase(repo repository.HospitalRepository) *HospitalUseCase {
	return &HospitalUseCase{repo: repo}
}

// Create da de alta un hospital activo.
func (uc *HospitalUseCase) Create(in dto.CreateHospitalRequest) (*dto.HospitalResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByNombre(nombre)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateHospital
	}
	now := time.Now()
	h := &entity.Hospital{
		ID:        uuid.New().String(),
		Nombre:    nombre,
		Activo:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(h); err != nil {
		return nil, err
	}
	return toHospitalResponse(h), nil
}

// Update renombra y/o cambia el estado activo. El renombre no se propaga a
// los registros existentes: conservan el nombre histórico a propósito.
func (uc *HospitalUseCase) Update(id string, in dto.UpdateHospitalRequest) (*dto.HospitalResponse, error) {
	h, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		nombre := strings.TrimSpace(*in.Nombre)
		if nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		if nombre != h.Nombre {
			otro, err := uc.repo.GetByNombre(nombre)
			if err != nil {
				return nil, err
			}
			if otro != nil && otro.ID != h.ID {
				return nil, domain.ErrDuplicateHospital
			}
			h.Nombre = nombre
		}
	}
	if in.Activo != nil {
		h.Activo = *in.Activo
	}
	h.UpdatedAt = time.Now()
	if err := uc.repo.Update(h); err != nil {
		return nil, err
	}
	return toHospitalResponse(h), nil
}

// Deactivate baja lógica: el hospital deja de ser seleccionable para nuevos
// registros pero la fila y los registros históricos quedan intactos.
func (uc *HospitalUseCase) Deactivate(id string) error {
	h, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if h == nil {
		return domain.ErrNotFound
	}
	h.Activo = false
	h.UpdatedAt = time.Now()
	return uc.repo.Update(h)
}

// List devuelve el catálogo completo para administración.
func (uc *HospitalUseCase) List() (*dto.HospitalListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toHospitalList(list), nil
}

// ListActive devuelve los hospitales seleccionables (activos, nombre ascendente).
func (uc *HospitalUseCase) ListActive() (*dto.HospitalListResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	return toHospitalList(list), nil
}

// Selectable indica si un nombre corresponde a un hospital activo, es decir,
// si es usable en registros nuevos o editados.
func (uc *HospitalUseCase) Selectable(nombre string) (bool, error) {
	h, err := uc.repo.GetByNombre(nombre)
	if err != nil {
		return false, err
	}
	return h != nil && h.Activo, nil
}

func toHospitalList(list []*entity.Hospital) *dto.HospitalListResponse {
	items := make([]dto.HospitalResponse, 0, len(list))
	for _, h := range list {
		items = append(items, *toHospitalResponse(h))
	}
	return &dto.HospitalListResponse{Items: items, Total: len(items)}
}

func toHospitalResponse(h *entity.Hospital) *dto.HospitalResponse {
	if h == nil {
		return nil
	}
	return &dto.HospitalResponse{
		ID:        h.ID,
		Nombre:    h.Nombre,
		Activo:    h.Activo,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}
