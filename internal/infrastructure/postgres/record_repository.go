package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/emergencias-api/internal/domain"
	"github.com/tu-usuario/emergencias-api/internal/domain/entity"
	"github.com/tu-usuario/emergencias-api/internal/domain/repository"
)

var _ repository.RecordRepository = (*RecordRepo)(nil)

const recordColumns = `id, fecha, hospital, atenciones, ingresos, alta_voluntaria,
		traslados, defunciones, motivo_traslado, hospital_referencia, eventualidades,
		created_at, updated_at`

// RecordRepo implementación del puerto RecordRepository sobre PostgreSQL.
type RecordRepo struct {
	pool *pgxpool.Pool
}

// NewRecordRepository construye el adaptador de persistencia para registros de emergencias.
func NewRecordRepository(pool *pgxpool.Pool) *RecordRepo {
	return &RecordRepo{pool: pool}
}

// Create persiste un nuevo registro. Una violación del constraint único
// (fecha, hospital) se traduce a ErrDuplicateRecord: el chequeo de duplicado
// en la capa de aplicación da el mensaje amable, el constraint cierra la carrera.
func (r *RecordRepo) Create(rec *entity.EmergencyRecord) error {
	query := `
		INSERT INTO emergency_records
			(id, fecha, hospital, atenciones, ingresos, alta_voluntaria, traslados,
			 defunciones, motivo_traslado, hospital_referencia, eventualidades,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.pool.Exec(context.Background(), query,
		rec.ID, rec.Fecha, rec.Hospital, rec.Atenciones, rec.Ingresos, rec.AltaVoluntaria,
		rec.Traslados, rec.Defunciones, rec.MotivoTraslado, rec.HospitalReferencia,
		rec.Eventualidades, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRecord
		}
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID.
func (r *RecordRepo) GetByID(id string) (*entity.EmergencyRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM emergency_records WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByFechaHospital devuelve el registro para (fecha, hospital) o nil.
func (r *RecordRepo) GetByFechaHospital(fecha time.Time, hospital string) (*entity.EmergencyRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM emergency_records WHERE fecha = $1 AND hospital = $2`
	return r.scanOne(query, fecha, hospital)
}

func (r *RecordRepo) scanOne(query string, args ...any) (*entity.EmergencyRecord, error) {
	var rec entity.EmergencyRecord
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&rec.ID, &rec.Fecha, &rec.Hospital, &rec.Atenciones, &rec.Ingresos,
		&rec.AltaVoluntaria, &rec.Traslados, &rec.Defunciones, &rec.MotivoTraslado,
		&rec.HospitalReferencia, &rec.Eventualidades, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get record: %w", err)
	}
	return &rec, nil
}

// Update actualiza un registro.
func (r *RecordRepo) Update(rec *entity.EmergencyRecord) error {
	query := `
		UPDATE emergency_records SET
			fecha = $2, hospital = $3, atenciones = $4, ingresos = $5,
			alta_voluntaria = $6, traslados = $7, defunciones = $8,
			motivo_traslado = $9, hospital_referencia = $10, eventualidades = $11,
			updated_at = $12
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		rec.ID, rec.Fecha, rec.Hospital, rec.Atenciones, rec.Ingresos, rec.AltaVoluntaria,
		rec.Traslados, rec.Defunciones, rec.MotivoTraslado, rec.HospitalReferencia,
		rec.Eventualidades, rec.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRecord
		}
		return fmt.Errorf("update record: %w", err)
	}
	return nil
}

// filterClause arma la cláusula WHERE y los argumentos para un RecordFilter.
// La comparten el listado y los agregados del tablero.
func filterClause(filter repository.RecordFilter) (string, []any) {
	var conds []string
	var args []any
	if filter.Hospital != "" {
		args = append(args, filter.Hospital)
		conds = append(conds, fmt.Sprintf("hospital = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, fmt.Sprintf("fecha >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conds = append(conds, fmt.Sprintf("fecha <= $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List devuelve los registros que cumplen el filtro, en el orden pedido.
func (r *RecordRepo) List(filter repository.RecordFilter) ([]*entity.EmergencyRecord, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + recordColumns + ` FROM emergency_records`)

	where, args := filterClause(filter)
	sb.WriteString(where)

	switch filter.Order {
	case repository.OrderChronological:
		sb.WriteString(" ORDER BY fecha ASC, created_at ASC, id ASC")
	default:
		sb.WriteString(" ORDER BY fecha DESC, created_at DESC, id DESC")
	}

	rows, err := r.pool.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()
	var list []*entity.EmergencyRecord
	for rows.Next() {
		var rec entity.EmergencyRecord
		if err := rows.Scan(
			&rec.ID, &rec.Fecha, &rec.Hospital, &rec.Atenciones, &rec.Ingresos,
			&rec.AltaVoluntaria, &rec.Traslados, &rec.Defunciones, &rec.MotivoTraslado,
			&rec.HospitalReferencia, &rec.Eventualidades, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// Delete elimina un registro por ID.
func (r *RecordRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM emergency_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}
