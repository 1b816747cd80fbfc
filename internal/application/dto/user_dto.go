package dto

// CreateUserRequest alta de usuario (solo admin).
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`     // "admin" | "user"; vacío = "user"
	Hospital string `json:"hospital"` // requerido para rol user; opcional para admin
}

// UpdateUserRequest edición de usuario (solo admin); campos nil no se modifican.
// Password, si viene, reemplaza la contraseña.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Role     *string `json:"role"`
	Hospital *string `json:"hospital"`
	Password *string `json:"password"`
}

// UserListResponse listado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Total int            `json:"total"`
}
