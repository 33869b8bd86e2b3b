package http

import (
	"fmt"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/drivelay/fleet-api/internal/application/dto"
	"github.com/drivelay/fleet-api/internal/application/usecase"
	"github.com/drivelay/fleet-api/internal/infrastructure/storage"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company.
type CompanyHandler struct {
	uc       *usecase.CompanyUseCase
	uploader storage.Uploader // nil si el almacén de blobs no está configurado
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase, uploader storage.Uploader) *CompanyHandler {
	return &CompanyHandler{uc: uc, uploader: uploader}
}

// Create godoc
// @Summary      Crear empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetIdentity(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Join godoc
// @Summary      Unirse a una empresa por código
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.JoinCompanyRequest  true  "Código de 6 caracteres"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/join [post]
func (h *CompanyHandler) Join(c *fiber.Ctx) error {
	var in dto.JoinCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Join(c.Context(), GetIdentity(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Current godoc
// @Summary      Empresa activa del actor
// @Tags         companies
// @Produce      json
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/current [get]
func (h *CompanyHandler) Current(c *fiber.Ctx) error {
	out, err := h.uc.Current(c.Context(), GetIdentity(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetCurrent godoc
// @Summary      Fijar la empresa activa del actor
// @Tags         companies
// @Success      204
// @Router       /api/companies/{companyId}/current [put]
func (h *CompanyHandler) SetCurrent(c *fiber.Ctx) error {
	if err := h.uc.SetCurrent(c.Context(), GetIdentity(c), c.Params("companyId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListMine godoc
// @Summary      Empresas del actor (miembro o propietario)
// @Tags         companies
// @Produce      json
// @Success      200  {object}  dto.CompanyListResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(c.Context(), GetIdentity(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener empresa por ID
// @Tags         companies
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId} [get]
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar empresa (solo rol elevado)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.CompanyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetIdentity(c), c.Params("companyId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UploadLogo godoc
// @Summary      Subir logo de la empresa (multipart, campo "file")
// @Tags         companies
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  dto.CompanyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/logo [post]
func (h *CompanyHandler) UploadLogo(c *fiber.Ctx) error {
	if h.uploader == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORAGE_DISABLED", Message: "almacén de imágenes no configurado"})
	}
	companyID := c.Params("companyId")
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo multipart 'file' requerido"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer file.Close()

	key := fmt.Sprintf("logos/%s/%s%s", companyID, uuid.New().String(), filepath.Ext(fileHeader.Filename))
	url, err := h.uploader.Upload(c.Context(), key, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.SetLogo(c.Context(), GetIdentity(c), companyID, url); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Get(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
