package entity

import (
	"strings"
	"time"
)

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa una cuenta del sistema. Hospital es el nombre (texto libre)
// del hospital asignado; para no-admin define el alcance de todas sus
// consultas y no puede ser sobreescrito por petición. Un admin puede no tener
// hospital asignado.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, user
	Hospital     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si el usuario tiene rol administrador.
func (u *User) IsAdmin() bool {
	return strings.EqualFold(u.Role, RoleAdmin)
}

// Actor identidad autenticada en cuyo nombre corre una operación.
// Se construye desde los claims del JWT, nunca desde el cuerpo de la petición.
type Actor struct {
	ID       string
	Username string
	Role     string
	Hospital string
}

// IsAdmin indica si el actor tiene rol administrador.
func (a Actor) IsAdmin() bool {
	return strings.EqualFold(a.Role, RoleAdmin)
}
