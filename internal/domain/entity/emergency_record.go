package entity

import "time"

// EmergencyRecord parte diario de emergencias de un hospital.
//
// Hospital es el nombre en texto libre, una instantánea al momento del
// registro: si el catálogo renombra un hospital, los registros históricos
// conservan el nombre con el que se reportaron. Invariante: a lo sumo un
// registro por (Fecha, Hospital), respaldado por constraint único en DB.
type EmergencyRecord struct {
	ID                 string
	Fecha              time.Time // solo la parte de fecha es significativa
	Hospital           string
	Atenciones         int
	Ingresos           int
	AltaVoluntaria     int
	Traslados          int
	Defunciones        int
	MotivoTraslado     string
	HospitalReferencia string
	Eventualidades     string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
