package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/drivelay/fleet-api/internal/application/dto"
	"github.com/drivelay/fleet-api/internal/application/usecase"
)

// VehicleHandler maneja el CRUD del registro de vehículos. Escritura con rol
// elevado, lectura abierta a cualquier miembro autenticado.
type VehicleHandler struct {
	uc *usecase.VehicleUseCase
}

// NewVehicleHandler construye el handler inyectando el caso de uso.
func NewVehicleHandler(uc *usecase.VehicleUseCase) *VehicleHandler {
	return &VehicleHandler{uc: uc}
}

// Create godoc
// @Summary      Alta de vehículo (solo rol elevado)
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.VehicleResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/vehicles [post]
func (h *VehicleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVehicleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Add(c.Context(), GetIdentity(c), c.Params("companyId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Flota de la empresa
// @Tags         vehicles
// @Produce      json
// @Success      200  {array}  dto.VehicleResponse
// @Router       /api/companies/{companyId}/vehicles [get]
func (h *VehicleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Params("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener vehículo por ID
// @Tags         vehicles
// @Produce      json
// @Success      200  {object}  dto.VehicleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/vehicles/{vehicleId} [get]
func (h *VehicleHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("companyId"), c.Params("vehicleId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar vehículo (solo rol elevado)
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.VehicleResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/vehicles/{vehicleId} [put]
func (h *VehicleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVehicleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetIdentity(c), c.Params("companyId"), c.Params("vehicleId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar vehículo (solo rol elevado)
// @Tags         vehicles
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/vehicles/{vehicleId} [delete]
func (h *VehicleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetIdentity(c), c.Params("companyId"), c.Params("vehicleId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
