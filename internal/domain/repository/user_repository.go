package repository

import "github.com/tu-usuario/emergencias-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByUsername busca por username exacto. Devuelve nil si no existe.
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	// List devuelve todos los usuarios: admins primero, luego username ascendente.
	List() ([]*entity.User, error)
	Delete(id string) error
	Count() (int, error)
}
