package repository

import "github.com/shopspring/decimal"

// RecordTotals agregados del conjunto filtrado, calculados por la base.
// Las tasas llegan como NUMERIC de 2 decimales; sin atenciones valen 0.
type RecordTotals struct {
	Atenciones     int
	Ingresos       int
	AltaVoluntaria int
	Traslados      int
	Defunciones    int
	TasaIngreso    decimal.Decimal
	TasaMortalidad decimal.Decimal
}

// StatsRepository puerto de consultas agregadas de solo lectura para el tablero.
type StatsRepository interface {
	Totals(filter RecordFilter) (RecordTotals, error)
}
