package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/drivelay/fleet-api/internal/application/dto"
	"github.com/drivelay/fleet-api/internal/application/usecase"
)

// EmployeeHandler maneja la plantilla de una empresa y sus invitaciones.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler inyectando el caso de uso.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// List godoc
// @Summary      Plantilla efectiva de la empresa
// @Tags         employees
// @Produce      json
// @Success      200  {array}  dto.EmployeeResponse
// @Router       /api/companies/{companyId}/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetIdentity(c), c.Params("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Alta manual en la plantilla (solo rol elevado)
// @Tags         employees
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.EmployeeResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/employees [post]
func (h *EmployeeHandler) Add(c *fiber.Ctx) error {
	var in dto.AddEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Add(c.Context(), GetIdentity(c), c.Params("companyId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar fila de plantilla (solo rol elevado)
// @Tags         employees
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.EmployeeResponse
// @Router       /api/companies/{companyId}/employees/{employeeId} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetIdentity(c), c.Params("companyId"), c.Params("employeeId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar fila de plantilla (solo rol elevado)
// @Tags         employees
// @Success      204
// @Router       /api/companies/{companyId}/employees/{employeeId} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetIdentity(c), c.Params("companyId"), c.Params("employeeId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Invite godoc
// @Summary      Invitar por email (solo rol elevado)
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.InvitationResponse
// @Router       /api/companies/{companyId}/invitations [post]
func (h *EmployeeHandler) Invite(c *fiber.Ctx) error {
	var in dto.InviteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Invite(c.Context(), GetIdentity(c), c.Params("companyId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListInvitations godoc
// @Summary      Invitaciones de la empresa (solo rol elevado)
// @Tags         invitations
// @Produce      json
// @Success      200  {array}  dto.InvitationResponse
// @Router       /api/companies/{companyId}/invitations [get]
func (h *EmployeeHandler) ListInvitations(c *fiber.Ctx) error {
	out, err := h.uc.ListInvitations(c.Context(), GetIdentity(c), c.Params("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CancelInvitation godoc
// @Summary      Cancelar invitación (única transición: Pendiente → Cancelada)
// @Tags         invitations
// @Accept       json
// @Success      204
// @Router       /api/companies/{companyId}/invitations/{invitationId} [patch]
func (h *EmployeeHandler) CancelInvitation(c *fiber.Ctx) error {
	var in struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.CancelInvitation(c.Context(), GetIdentity(c), c.Params("companyId"), c.Params("invitationId"), in.Status); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteInvitation godoc
// @Summary      Borrar invitación (solo rol elevado)
// @Tags         invitations
// @Success      204
// @Router       /api/companies/{companyId}/invitations/{invitationId} [delete]
func (h *EmployeeHandler) DeleteInvitation(c *fiber.Ctx) error {
	if err := h.uc.DeleteInvitation(c.Context(), GetIdentity(c), c.Params("companyId"), c.Params("invitationId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
