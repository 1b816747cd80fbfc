package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/emergencias-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas de solo lectura para el tablero.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de agregados.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// Totals suma los contadores del conjunto filtrado y calcula las tasas de
// ingreso y mortalidad en la base. Las tasas salen como NUMERIC de 2
// decimales (codec shopspring registrado en el pool); NULLIF evita la
// división por cero cuando el período no tiene atenciones.
func (r *StatsRepo) Totals(filter repository.RecordFilter) (repository.RecordTotals, error) {
	const query = `
	SELECT
	    COALESCE(SUM(atenciones),      0) AS atenciones,
	    COALESCE(SUM(ingresos),        0) AS ingresos,
	    COALESCE(SUM(alta_voluntaria), 0) AS alta_voluntaria,
	    COALESCE(SUM(traslados),       0) AS traslados,
	    COALESCE(SUM(defunciones),     0) AS defunciones,
	    COALESCE(ROUND(SUM(ingresos)::NUMERIC    / NULLIF(SUM(atenciones), 0) * 100, 2), 0) AS tasa_ingreso,
	    COALESCE(ROUND(SUM(defunciones)::NUMERIC / NULLIF(SUM(atenciones), 0) * 100, 2), 0) AS tasa_mortalidad
	FROM emergency_records`

	where, args := filterClause(filter)

	var t repository.RecordTotals
	err := r.pool.QueryRow(context.Background(), query+where, args...).Scan(
		&t.Atenciones, &t.Ingresos, &t.AltaVoluntaria, &t.Traslados, &t.Defunciones,
		&t.TasaIngreso, &t.TasaMortalidad,
	)
	if err != nil {
		return repository.RecordTotals{}, fmt.Errorf("totales de registros: %w", err)
	}
	return t, nil
}
