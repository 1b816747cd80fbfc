package repository

import (
	"time"

	"github.com/tu-usuario/emergencias-api/internal/domain/entity"
)

// RecordOrder orden de los listados de registros.
type RecordOrder int

const (
	// OrderRecentFirst fecha DESC, created_at DESC, id DESC (listado).
	OrderRecentFirst RecordOrder = iota
	// OrderChronological fecha ASC, created_at ASC, id ASC (dashboard y exportaciones).
	OrderChronological
)

// RecordFilter criterios del motor de consulta compartido. Hospital vacío = sin
// filtro de hospital; From/To nil = sin cota. Las cotas de fecha son inclusivas.
type RecordFilter struct {
	Hospital string
	From     *time.Time
	To       *time.Time
	Order    RecordOrder
}

// RecordRepository define el puerto de persistencia para EmergencyRecord (DIP).
type RecordRepository interface {
	Create(rec *entity.EmergencyRecord) error
	GetByID(id string) (*entity.EmergencyRecord, error)
	// GetByFechaHospital devuelve el registro para (fecha, hospital) o nil.
	GetByFechaHospital(fecha time.Time, hospital string) (*entity.EmergencyRecord, error)
	Update(rec *entity.EmergencyRecord) error
	List(filter RecordFilter) ([]*entity.EmergencyRecord, error)
	Delete(id string) error
}
