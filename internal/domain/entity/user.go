package entity

import "time"

// User representa el perfil de un usuario (puede pertenecer a varias empresas).
type User struct {
	ID               string
	Email            string
	Nombre           string
	Apellido         string
	Apodo            string
	FotoURL          string
	NumeroEmpleado   string
	Telefono         string
	PasswordHash     string // bcrypt, nunca plano después de persistir
	CurrentCompanyID string // empresa activa; vacío = sin empresa fija
	CreatedAt        time.Time
}

// FullName compone nombre y apellido omitiendo partes vacías.
func (u *User) FullName() string {
	switch {
	case u.Nombre != "" && u.Apellido != "":
		return u.Nombre + " " + u.Apellido
	case u.Nombre != "":
		return u.Nombre
	default:
		return u.Apellido
	}
}
