package dto

import "time"

// CreateHospitalRequest alta de hospital en el catálogo.
type CreateHospitalRequest struct {
	Nombre string `json:"nombre"`
}

// UpdateHospitalRequest edición de hospital; campos nil no se modifican.
type UpdateHospitalRequest struct {
	Nombre *string `json:"nombre"`
	Activo *bool   `json:"activo"`
}

// HospitalResponse hospital del catálogo.
type HospitalResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HospitalListResponse listado de hospitales.
type HospitalListResponse struct {
	Items []HospitalResponse `json:"items"`
	Total int                `json:"total"`
}
