package notify

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/drivelay/fleet-api/internal/domain/entity"
	"github.com/drivelay/fleet-api/internal/domain/repository"
	"github.com/drivelay/fleet-api/internal/infrastructure/observability"
	"github.com/drivelay/fleet-api/pkg/logger"
)

// Event describe un evento de ciclo de vida a publicar en el feed.
type Event struct {
	Type       string
	VehicleID  string
	Message    string
	DurationMs *int64
	DistanceKm *int
}

// Notifier agrega eventos enriquecidos al feed de la empresa.
//
// Frontera de mejor esfuerzo: se invoca después de que la escritura
// disparadora ya se confirmó, y un fallo aquí jamás la revierte ni se
// propaga al llamador; solo se registra en el log y en métricas. El
// enriquecimiento (nombre/email del actor, placa/nombre del vehículo)
// también es de mejor esfuerzo: si falla, la notificación sale con menos
// campos opcionales, no deja de salir.
type Notifier struct {
	notifications repository.NotificationRepository
	users         repository.UserRepository
	vehicles      repository.VehicleRepository
	metrics       *observability.Metrics
	log           *logger.Logger
}

// NewNotifier construye el publicador de notificaciones.
func NewNotifier(
	notifications repository.NotificationRepository,
	users repository.UserRepository,
	vehicles repository.VehicleRepository,
	metrics *observability.Metrics,
	log *logger.Logger,
) *Notifier {
	return &Notifier{
		notifications: notifications,
		users:         users,
		vehicles:      vehicles,
		metrics:       metrics,
		log:           log,
	}
}

// Publish persiste el evento en el feed de la empresa. Nunca devuelve error.
func (n *Notifier) Publish(ctx context.Context, companyID string, actor entity.Identity, ev Event) {
	notif := &entity.Notification{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		Type:       ev.Type,
		Timestamp:  time.Now(),
		UserID:     actor.UID,
		VehicleID:  ev.VehicleID,
		Message:    ev.Message,
		DurationMs: ev.DurationMs,
		DistanceKm: ev.DistanceKm,
	}

	if user, err := n.users.GetByID(ctx, actor.UID); err != nil {
		n.log.Warn().Err(err).Str("user_id", actor.UID).Msg("notificación sin datos de usuario")
	} else if user != nil {
		notif.UserName = user.FullName()
		notif.UserEmail = user.Email
	}

	if ev.VehicleID != "" {
		if vehicle, err := n.vehicles.GetByID(ctx, companyID, ev.VehicleID); err != nil {
			n.log.Warn().Err(err).Str("vehicle_id", ev.VehicleID).Msg("notificación sin datos de vehículo")
		} else if vehicle != nil {
			notif.VehiclePlate = vehicle.Plate
			notif.VehicleName = vehicle.Name
		}
	}

	if err := n.notifications.Create(ctx, notif); err != nil {
		n.metrics.IncNotificationFailure(ev.Type)
		n.log.Warn().Err(err).
			Str("company_id", companyID).
			Str("type", ev.Type).
			Msg("notificación descartada")
		return
	}
	n.metrics.IncNotification(ev.Type)
}

// Feed devuelve el feed de la empresa ordenado por tiempo descendente.
func (n *Notifier) Feed(ctx context.Context, companyID string) ([]*entity.Notification, error) {
	return n.notifications.ListByCompany(ctx, companyID)
}
