// Package export produce las exportaciones de registros: CSV, libro XLSX con
// formato y reporte PDF, todas sobre el mismo motor de consulta compartido.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/emergencias-api/internal/application/records"
	"github.com/tu-usuario/emergencias-api/internal/domain/entity"
	"github.com/tu-usuario/emergencias-api/internal/domain/repository"
)

// Meta metadatos de una exportación, mostrados en la hoja Resumen.
type Meta struct {
	GeneratedAt  time.Time
	Scope        string // hospital efectivo o "Todos"
	Desde        string // cota original pedida (puede haberse descartado)
	Hasta        string
	Count        int
	Notes        []string
	DateFallback bool // true si se reintentó sin filtros de fecha
}

// Result conjunto exportable + sus metadatos.
type Result struct {
	Records []*entity.EmergencyRecord
	Meta    Meta
}

// UseCase resuelve la consulta de exportación con la regla salvavidas: si los
// filtros de fecha dejan el resultado vacío, se reintenta la misma consulta
// sin fechas (conservando el alcance por rol/hospital) y se anota en Resumen.
// Aplica a los tres formatos.
type UseCase struct {
	recordsUC *records.UseCase
	now       func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(recordsUC *records.UseCase) *UseCase {
	return &UseCase{recordsUC: recordsUC, now: time.Now}
}

// Run ejecuta la consulta (orden cronológico) y arma los metadatos.
func (uc *UseCase) Run(actor entity.Actor, hospital, desde, hasta string) (*Result, error) {
	list, filter, err := uc.recordsUC.Query(actor, hospital, desde, hasta, repository.OrderChronological)
	if err != nil {
		return nil, err
	}

	meta := Meta{
		GeneratedAt: uc.now(),
		Scope:       scopeLabel(actor, filter),
	}
	if filter.From != nil {
		meta.Desde = records.FormatFecha(*filter.From)
	}
	if filter.To != nil {
		meta.Hasta = records.FormatFecha(*filter.To)
	}

	// Salvavidas: sin resultados y con filtros de fecha, reintentar sin fechas.
	if len(list) == 0 && (filter.From != nil || filter.To != nil) {
		retry := filter
		retry.From, retry.To = nil, nil
		list, err = uc.recordsUC.QueryFiltered(retry)
		if err != nil {
			return nil, err
		}
		meta.DateFallback = true
		meta.Notes = append(meta.Notes,
			"Sin resultados con fechas; se exportó sin filtros de fecha.")
	}

	if notas := appliedFilters(actor, filter); notas != "" {
		meta.Notes = append(meta.Notes, "Filtros aplicados: "+notas)
	}
	meta.Count = len(list)

	return &Result{Records: list, Meta: meta}, nil
}

func scopeLabel(actor entity.Actor, filter repository.RecordFilter) string {
	if filter.Hospital != "" {
		return filter.Hospital
	}
	if !actor.IsAdmin() {
		return actor.Hospital
	}
	return "Todos"
}

func appliedFilters(actor entity.Actor, filter repository.RecordFilter) string {
	var parts []string
	if !actor.IsAdmin() {
		parts = append(parts, fmt.Sprintf("Rol usuario restringe a hospital '%s'", actor.Hospital))
	} else if filter.Hospital != "" {
		parts = append(parts, fmt.Sprintf("Filtro hospital '%s'", filter.Hospital))
	}
	if filter.From != nil {
		parts = append(parts, "Desde "+records.FormatFecha(*filter.From))
	}
	if filter.To != nil {
		parts = append(parts, "Hasta "+records.FormatFecha(*filter.To))
	}
	return strings.Join(parts, "; ")
}
