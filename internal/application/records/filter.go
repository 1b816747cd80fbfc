package records

import (
	"strings"
	"time"

	"github.com/tu-usuario/emergencias-api/internal/domain/entity"
	"github.com/tu-usuario/emergencias-api/internal/domain/repository"
)

// fechaLayout formato de fecha de toda la API (ISO-8601 solo fecha).
const fechaLayout = "2006-01-02"

// BuildFilter construye el filtro compartido por listado, dashboard y
// exportaciones aplicando el scoping por rol:
//
//   - rol user: el filtro de hospital que venga en la petición se ignora y se
//     fuerza el hospital asignado del actor; nunca ve datos ajenos.
//   - admin: el filtro de hospital es opcional.
//
// Las fechas no parseables se tratan como ausentes, sin error. Si el rango
// viene invertido se intercambian las cotas. Ambas cotas son inclusivas.
func BuildFilter(actor entity.Actor, hospital, desde, hasta string, order repository.RecordOrder) repository.RecordFilter {
	f := repository.RecordFilter{Order: order}

	if actor.IsAdmin() {
		f.Hospital = strings.TrimSpace(hospital)
	} else {
		f.Hospital = actor.Hospital
	}

	f.From = parseFecha(desde)
	f.To = parseFecha(hasta)
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		f.From, f.To = f.To, f.From
	}
	return f
}

// parseFecha devuelve nil ante cadena vacía o no parseable: la política es
// disponibilidad sobre estrictez, un filtro malo no tumba la consulta.
func parseFecha(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(fechaLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// FormatFecha serializa una fecha al formato de la API.
func FormatFecha(t time.Time) string {
	return t.Format(fechaLayout)
}
