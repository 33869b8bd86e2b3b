package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/drivelay/fleet-api/internal/application/dto"
	"github.com/drivelay/fleet-api/internal/domain"
)

// respondError traduce los errores centinela del dominio a respuestas HTTP.
// Todo lo que no sea un centinela conocido es un 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NOT_AUTHENTICATED", Message: "autenticación requerida"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin permisos para esta operación"})
	case errors.Is(err, domain.ErrNotAMember):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_COMPANY", Message: "el usuario no pertenece a ninguna empresa"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInvalidCode):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "INVALID_CODE", Message: "código de empresa inválido"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "ya existe un usuario con ese email"})
	case errors.Is(err, domain.ErrVehicleNotAvailable):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "VEHICLE_NOT_AVAILABLE", Message: "el vehículo no está disponible"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
