package repository

import (
	"context"

	"github.com/drivelay/fleet-api/internal/domain/entity"
)

// NotificationRepository define el puerto del feed de notificaciones.
// Solo altas y lectura: el feed no se muta ni se borra.
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Notification, error)
}
