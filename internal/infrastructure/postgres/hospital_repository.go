package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/emergencias-api/internal/domain"
	"github.com/tu-usuario/emergencias-api/internal/domain/entity"
	"github.com/tu-usuario/emergencias-api/internal/domain/repository"
)

var _ repository.HospitalRepository = (*HospitalRepo)(nil)

// HospitalRepo implementación del puerto HospitalRepository sobre PostgreSQL.
type HospitalRepo struct {
	pool *pgxpool.Pool
}

// NewHospitalRepository construye el adaptador de persistencia para hospitales.
func NewHospitalRepository(pool *pgxpool.Pool) *HospitalRepo {
	return &HospitalRepo{pool: pool}
}

// Create persiste un nuevo hospital.
func (r *HospitalRepo) Create(hospital *entity.Hospital) error {
	query := `
		INSERT INTO hospitals (id, nombre, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		hospital.ID, hospital.Nombre, hospital.Activo, hospital.CreatedAt, hospital.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateHospital
		}
		return fmt.Errorf("insert hospital: %w", err)
	}
	return nil
}

// GetByID obtiene un hospital por ID.
func (r *HospitalRepo) GetByID(id string) (*entity.Hospital, error) {
	query := `
		SELECT id, nombre, activo, created_at, updated_at
		FROM hospitals WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByNombre obtiene un hospital por nombre exacto (activo o no).
func (r *HospitalRepo) GetByNombre(nombre string) (*entity.Hospital, error) {
	query := `
		SELECT id, nombre, activo, created_at, updated_at
		FROM hospitals WHERE nombre = $1`
	return r.scanOne(query, nombre)
}

func (r *HospitalRepo) scanOne(query string, arg any) (*entity.Hospital, error) {
	var h entity.Hospital
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&h.ID, &h.Nombre, &h.Activo, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get hospital: %w", err)
	}
	return &h, nil
}

// Update actualiza nombre y estado de un hospital.
func (r *HospitalRepo) Update(hospital *entity.Hospital) error {
	query := `
		UPDATE hospitals SET nombre = $2, activo = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		hospital.ID, hospital.Nombre, hospital.Activo, hospital.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateHospital
		}
		return fmt.Errorf("update hospital: %w", err)
	}
	return nil
}

// List devuelve el catálogo completo: activos primero, luego nombre ascendente.
func (r *HospitalRepo) List() ([]*entity.Hospital, error) {
	query := `
		SELECT id, nombre, activo, created_at, updated_at
		FROM hospitals ORDER BY activo DESC, nombre ASC`
	return r.scanMany(query)
}

// ListActive devuelve solo hospitales activos, nombre ascendente.
func (r *HospitalRepo) ListActive() ([]*entity.Hospital, error) {
	query := `
		SELECT id, nombre, activo, created_at, updated_at
		FROM hospitals WHERE activo = TRUE ORDER BY nombre ASC`
	return r.scanMany(query)
}

func (r *HospitalRepo) scanMany(query string) ([]*entity.Hospital, error) {
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list hospitals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Hospital
	for rows.Next() {
		var h entity.Hospital
		if err := rows.Scan(&h.ID, &h.Nombre, &h.Activo, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan hospital: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}

// Count cuenta los hospitales existentes (activos o no).
func (r *HospitalRepo) Count() (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM hospitals`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count hospitals: %w", err)
	}
	return n, nil
}
