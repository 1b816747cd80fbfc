package dto

import "time"

// RecordInput entrada de crear/editar registro. Los contadores llegan como
// texto y se normalizan con la política de coerción: en alta, inválido o
// ausente vale 0; en edición, inválido o ausente conserva el valor previo.
// Nunca se almacena un negativo.
type RecordInput struct {
	Fecha              string `json:"fecha"`    // YYYY-MM-DD; vacío = hoy (alta) / fecha previa (edición)
	Hospital           string `json:"hospital"` // ignorado para rol user (se fuerza el asignado)
	Atenciones         string `json:"atenciones"`
	Ingresos           string `json:"ingresos"`
	AltaVoluntaria     string `json:"alta_voluntaria"`
	Traslados          string `json:"traslados"`
	Defunciones        string `json:"defunciones"`
	MotivoTraslado     string `json:"motivo_traslado"`
	HospitalReferencia string `json:"hospital_referencia"`
	Eventualidades     string `json:"eventualidades"`
}

// RecordResponse registro de emergencias.
type RecordResponse struct {
	ID                 string    `json:"id"`
	Fecha              string    `json:"fecha"` // YYYY-MM-DD
	Hospital           string    `json:"hospital"`
	Atenciones         int       `json:"atenciones"`
	Ingresos           int       `json:"ingresos"`
	AltaVoluntaria     int       `json:"alta_voluntaria"`
	Traslados          int       `json:"traslados"`
	Defunciones        int       `json:"defunciones"`
	MotivoTraslado     string    `json:"motivo_traslado"`
	HospitalReferencia string    `json:"hospital_referencia"`
	Eventualidades     string    `json:"eventualidades"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// RecordListResponse listado filtrado de registros.
type RecordListResponse struct {
	Items []RecordResponse `json:"items"`
	Total int              `json:"total"`
}
