package dto

import "time"

// RegisterRequest alta de usuario con email y contraseña.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token emitido más el perfil del usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateProfileRequest campos editables del perfil. Un valor en blanco
// limpia el campo correspondiente.
type UpdateProfileRequest struct {
	Apodo          string `json:"apodo"`
	FotoURL        string `json:"fotoUrl"`
	NumeroEmpleado string `json:"numeroEmpleado"`
	Telefono       string `json:"telefono"`
}

// UserResponse perfil público de un usuario.
type UserResponse struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Nombre           string    `json:"nombre"`
	Apellido         string    `json:"apellido"`
	Apodo            string    `json:"apodo,omitempty"`
	FotoURL          string    `json:"fotoUrl,omitempty"`
	NumeroEmpleado   string    `json:"numeroEmpleado,omitempty"`
	Telefono         string    `json:"telefono,omitempty"`
	CurrentCompanyID string    `json:"currentCompanyId,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}
