package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicateHospital  = errors.New("ya existe un hospital con ese nombre")
	ErrDuplicateRecord    = errors.New("ya existe un registro para ese hospital en esa fecha")
	ErrUserAlreadyExists  = errors.New("ya existe un usuario con ese nombre")
	ErrInvalidHospital    = errors.New("hospital inválido o inactivo")
	ErrSelfDelete         = errors.New("no puedes eliminar tu propio usuario")
)
