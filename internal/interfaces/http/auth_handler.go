package http

import (
	"fmt"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/drivelay/fleet-api/internal/application/auth"
	"github.com/drivelay/fleet-api/internal/application/dto"
	"github.com/drivelay/fleet-api/internal/infrastructure/storage"
)

// AuthHandler maneja registro, login y perfil del actor.
type AuthHandler struct {
	uc       *auth.AuthUseCase
	uploader storage.Uploader // nil si el almacén de blobs no está configurado
}

// NewAuthHandler construye el handler inyectando el caso de uso.
func NewAuthHandler(uc *auth.AuthUseCase, uploader storage.Uploader) *AuthHandler {
	return &AuthHandler{uc: uc, uploader: uploader}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Profile godoc
// @Summary      Perfil del actor
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.Profile(c.Context(), GetIdentity(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Editar perfil (apodo, foto, número de empleado, teléfono)
// @Tags         auth
// @Accept       json
// @Success      204
// @Router       /api/auth/me [put]
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateProfile(c.Context(), GetIdentity(c), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadPhoto godoc
// @Summary      Subir foto de perfil (multipart, campo "file")
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Router       /api/auth/me/photo [post]
func (h *AuthHandler) UploadPhoto(c *fiber.Ctx) error {
	if h.uploader == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORAGE_DISABLED", Message: "almacén de imágenes no configurado"})
	}
	id := GetIdentity(c)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo multipart 'file' requerido"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer file.Close()

	key := fmt.Sprintf("photos/%s/%s%s", id.UID, uuid.New().String(), filepath.Ext(fileHeader.Filename))
	url, err := h.uploader.Upload(c.Context(), key, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.SetPhoto(c.Context(), id, url); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Profile(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
