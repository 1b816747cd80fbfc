package entity

import "time"

// Hospital entrada del catálogo de hospitales. La baja es siempre lógica:
// Activo=false lo retira de las superficies de selección pero nunca se borra
// la fila, porque los registros históricos referencian el nombre.
type Hospital struct {
	ID        string
	Nombre    string // único, exacto (sensible a mayúsculas)
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
