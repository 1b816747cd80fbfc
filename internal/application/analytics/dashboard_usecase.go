// Package analytics contiene el caso de uso del tablero: KPIs, series por
// fecha y ranking de hospitales sobre el conjunto filtrado de registros.
package analytics

import (
	"sort"

	"github.com/tu-usuario/emergencias-api/internal/application/dto"
	"github.com/tu-usuario/emergencias-api/internal/application/records"
	"github.com/tu-usuario/emergencias-api/internal/domain/entity"
	"github.com/tu-usuario/emergencias-api/internal/domain/repository"
)

const rankingTop = 5 // posiciones del ranking de hospitales

// DashboardUseCase reduce el conjunto filtrado a los agregados del tablero.
//
// KPIs y tasas vienen del repositorio de agregados (la base suma y redondea);
// series y ranking se arman en memoria sobre el listado cronológico del motor
// de consulta compartido. Ambos consumen el mismo filtro.
type DashboardUseCase struct {
	recordsUC *records.UseCase
	stats     repository.StatsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(recordsUC *records.UseCase, stats repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{recordsUC: recordsUC, stats: stats}
}

// GetSummary construye el DashboardResponse para el actor y filtros dados.
//
// El ranking solo se calcula para un admin sin filtro de hospital: con el
// alcance restringido a un hospital no hay nada que comparar.
func (uc *DashboardUseCase) GetSummary(actor entity.Actor, hospital, desde, hasta string) (*dto.DashboardResponse, error) {
	list, filter, err := uc.recordsUC.Query(actor, hospital, desde, hasta, repository.OrderChronological)
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardResponse{
		Hospital: scopeLabel(actor, filter),
	}
	if filter.From != nil {
		out.Desde = records.FormatFecha(*filter.From)
	}
	if filter.To != nil {
		out.Hasta = records.FormatFecha(*filter.To)
	}

	// ── KPIs y tasas (agregado en la base) ────────────────────────────────────
	totals, err := uc.stats.Totals(filter)
	if err != nil {
		return nil, err
	}
	out.Atenciones = totals.Atenciones
	out.Ingresos = totals.Ingresos
	out.AltaVoluntaria = totals.AltaVoluntaria
	out.Traslados = totals.Traslados
	out.Defunciones = totals.Defunciones
	out.TasaIngreso = totals.TasaIngreso
	out.TasaMortalidad = totals.TasaMortalidad

	// ── Serie por fecha ───────────────────────────────────────────────────────
	out.Series = buildSeries(list)

	// ── Ranking por hospital ──────────────────────────────────────────────────
	if actor.IsAdmin() && filter.Hospital == "" {
		out.Ranking = buildRanking(list)
	}

	return out, nil
}

// buildSeries agrupa por fecha sumando contadores; las fechas salen ordenadas
// ascendentes y los cuatro arreglos quedan alineados con ellas.
func buildSeries(list []*entity.EmergencyRecord) dto.SeriesDTO {
	type bucket struct {
		atenciones, ingresos, traslados, defunciones int
	}
	buckets := make(map[string]*bucket)
	for _, r := range list {
		key := records.FormatFecha(r.Fecha)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.atenciones += r.Atenciones
		b.ingresos += r.Ingresos
		b.traslados += r.Traslados
		b.defunciones += r.Defunciones
	}

	fechas := make([]string, 0, len(buckets))
	for k := range buckets {
		fechas = append(fechas, k)
	}
	sort.Strings(fechas) // YYYY-MM-DD ordena lexicográfica == cronológicamente

	s := dto.SeriesDTO{
		Fechas:      fechas,
		Atenciones:  make([]int, len(fechas)),
		Ingresos:    make([]int, len(fechas)),
		Traslados:   make([]int, len(fechas)),
		Defunciones: make([]int, len(fechas)),
	}
	for i, f := range fechas {
		b := buckets[f]
		s.Atenciones[i] = b.atenciones
		s.Ingresos[i] = b.ingresos
		s.Traslados[i] = b.traslados
		s.Defunciones[i] = b.defunciones
	}
	return s
}

// buildRanking suma atenciones por hospital y devuelve el top 5 descendente.
// Empate: nombre de hospital ascendente (desempate determinista, parte del contrato).
func buildRanking(list []*entity.EmergencyRecord) []dto.RankingItemDTO {
	totales := make(map[string]int)
	for _, r := range list {
		totales[r.Hospital] += r.Atenciones
	}
	ranking := make([]dto.RankingItemDTO, 0, len(totales))
	for h, n := range totales {
		ranking = append(ranking, dto.RankingItemDTO{Hospital: h, Atenciones: n})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Atenciones != ranking[j].Atenciones {
			return ranking[i].Atenciones > ranking[j].Atenciones
		}
		return ranking[i].Hospital < ranking[j].Hospital
	})
	if len(ranking) > rankingTop {
		ranking = ranking[:rankingTop]
	}
	return ranking
}

// scopeLabel alcance efectivo mostrado en el tablero.
func scopeLabel(actor entity.Actor, filter repository.RecordFilter) string {
	if filter.Hospital != "" {
		return filter.Hospital
	}
	if !actor.IsAdmin() {
		return actor.Hospital
	}
	return "Todos"
}
