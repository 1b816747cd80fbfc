package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// ExistingID solo para DUPLICATE_RECORD: id del registro que ya ocupa
	// (fecha, hospital), para redirigir al cliente a editarlo.
	ExistingID string `json:"existing_id,omitempty"`
}
