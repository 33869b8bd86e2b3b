package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Cada operación pública devuelve exactamente uno de estos o un error de
// infraestructura envuelto con %w; los handlers los traducen a HTTP.
var (
	ErrNotAuthenticated    = errors.New("usuario no autenticado")
	ErrNotAMember          = errors.New("el usuario no pertenece a ninguna empresa")
	ErrForbidden           = errors.New("acceso denegado")
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidCode         = errors.New("código de empresa no válido")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrUnauthorized        = errors.New("credenciales inválidas")
	ErrVehicleNotAvailable = errors.New("el vehículo no está disponible")
)
