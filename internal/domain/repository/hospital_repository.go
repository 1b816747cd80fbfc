package repository

import "github.com/tu-usuario/emergencias-api/internal/domain/entity"

// HospitalRepository define el puerto de persistencia para Hospital (DIP).
type HospitalRepository interface {
	Create(hospital *entity.Hospital) error
	GetByID(id string) (*entity.Hospital, error)
	// GetByNombre busca por nombre exacto, activo o no. Devuelve nil si no existe.
	GetByNombre(nombre string) (*entity.Hospital, error)
	Update(hospital *entity.Hospital) error
	// List devuelve el catálogo completo: activos primero, luego nombre ascendente.
	List() ([]*entity.Hospital, error)
	// ListActive devuelve solo activos, nombre ascendente.
	ListActive() ([]*entity.Hospital, error)
	Count() (int, error)
}
