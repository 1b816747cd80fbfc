package dto

import "github.com/shopspring/decimal"

// DashboardResponse resumen agregado para el tablero.
// Todo se calcula sobre el mismo conjunto filtrado y ordenado cronológicamente
// que usan el listado y las exportaciones.
type DashboardResponse struct {
	// Alcance efectivo: hospital del usuario, filtro del admin o "Todos".
	Hospital string `json:"hospital"`
	Desde    string `json:"desde,omitempty"`
	Hasta    string `json:"hasta,omitempty"`

	// KPIs: sumas sobre el conjunto completo.
	Atenciones     int `json:"atenciones"`
	Ingresos       int `json:"ingresos"`
	AltaVoluntaria int `json:"alta_voluntaria"`
	Traslados      int `json:"traslados"`
	Defunciones    int `json:"defunciones"`

	// Tasas en porcentaje, 2 decimales. Con cero atenciones valen 0.
	TasaIngreso    decimal.Decimal `json:"tasa_ingreso"`
	TasaMortalidad decimal.Decimal `json:"tasa_mortalidad"`

	Series  SeriesDTO        `json:"series"`
	Ranking []RankingItemDTO `json:"ranking,omitempty"`
}

// SeriesDTO series por fecha para el gráfico: el eje X son las fechas
// ascendentes y los cuatro arreglos numéricos quedan alineados con él.
type SeriesDTO struct {
	Fechas      []string `json:"fechas"` // YYYY-MM-DD ascendente
	Atenciones  []int    `json:"atenciones"`
	Ingresos    []int    `json:"ingresos"`
	Traslados   []int    `json:"traslados"`
	Defunciones []int    `json:"defunciones"`
}

// RankingItemDTO posición del ranking de hospitales por atenciones.
type RankingItemDTO struct {
	Hospital   string `json:"hospital"`
	Atenciones int    `json:"atenciones"`
}
