package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/drivelay/fleet-api/internal/application/dto"
	"github.com/drivelay/fleet-api/internal/application/notify"
	"github.com/drivelay/fleet-api/internal/domain/entity"
)

// NotificationHandler expone el feed de actividad de la empresa.
type NotificationHandler struct {
	notifier *notify.Notifier
}

// NewNotificationHandler construye el handler inyectando el publicador.
func NewNotificationHandler(notifier *notify.Notifier) *NotificationHandler {
	return &NotificationHandler{notifier: notifier}
}

// Feed godoc
// @Summary      Feed de notificaciones de la empresa, más reciente primero
// @Tags         notifications
// @Produce      json
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/companies/{companyId}/notifications [get]
func (h *NotificationHandler) Feed(c *fiber.Ctx) error {
	list, err := h.notifier.Feed(c.Context(), c.Params("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, toNotificationResponse(n))
	}
	return c.JSON(out)
}

func toNotificationResponse(n *entity.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:           n.ID,
		CompanyID:    n.CompanyID,
		Type:         n.Type,
		Timestamp:    n.Timestamp,
		UserID:       n.UserID,
		VehicleID:    n.VehicleID,
		Message:      n.Message,
		UserName:     n.UserName,
		UserEmail:    n.UserEmail,
		VehiclePlate: n.VehiclePlate,
		VehicleName:  n.VehicleName,
		DurationMs:   n.DurationMs,
		DistanceKm:   n.DistanceKm,
	}
}
