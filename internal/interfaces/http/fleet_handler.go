package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/drivelay/fleet-api/internal/application/dto"
	"github.com/drivelay/fleet-api/internal/application/fleet"
)

// FleetHandler maneja el ciclo retiro/devolución, el historial de usos y las
// alertas de accidente.
type FleetHandler struct {
	uc *fleet.UseCase
}

// NewFleetHandler construye el handler inyectando el caso de uso.
func NewFleetHandler(uc *fleet.UseCase) *FleetHandler {
	return &FleetHandler{uc: uc}
}

// Start godoc
// @Summary      Retirar vehículo (Activo → En Uso)
// @Tags         fleet
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StartUsageRequest  true  "Kilometraje inicial"
// @Success      200   {object}  dto.VehicleResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/vehicles/{vehicleId}/start [post]
func (h *FleetHandler) Start(c *fiber.Ctx) error {
	var in dto.StartUsageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Start(c.Context(), GetIdentity(c), c.Params("companyId"), c.Params("vehicleId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Finish godoc
// @Summary      Devolver vehículo (En Uso → Activo) y cerrar el registro de uso
// @Tags         fleet
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FinishUsageRequest  true  "Kilometraje final y notas"
// @Success      201   {object}  dto.UsageRecordResponse
// @Router       /api/companies/{companyId}/vehicles/{vehicleId}/finish [post]
func (h *FleetHandler) Finish(c *fiber.Ctx) error {
	var in dto.FinishUsageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Finish(c.Context(), GetIdentity(c), c.Params("companyId"), c.Params("vehicleId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ReportAccident godoc
// @Summary      Reportar accidente / solicitar ayuda
// @Tags         fleet
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReportAlertRequest  true  "Mensaje opcional"
// @Success      201   {object}  dto.AlertResponse
// @Router       /api/companies/{companyId}/vehicles/{vehicleId}/report [post]
func (h *FleetHandler) ReportAccident(c *fiber.Ctx) error {
	var in dto.ReportAlertRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ReportAccident(c.Context(), GetIdentity(c), c.Params("companyId"), c.Params("vehicleId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Historial de usos de la empresa, más reciente primero
// @Tags         fleet
// @Produce      json
// @Success      200  {array}  dto.UsageRecordResponse
// @Router       /api/companies/{companyId}/usages [get]
func (h *FleetHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.Context(), GetIdentity(c), c.Params("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Alerts godoc
// @Summary      Alertas de accidente de la empresa
// @Tags         fleet
// @Produce      json
// @Success      200  {array}  dto.AlertResponse
// @Router       /api/companies/{companyId}/alerts [get]
func (h *FleetHandler) Alerts(c *fiber.Ctx) error {
	out, err := h.uc.Alerts(c.Context(), GetIdentity(c), c.Params("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
