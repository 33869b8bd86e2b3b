package postgres

import (
	"context"
	"fmt"

	"github.com/drivelay/fleet-api/internal/domain/entity"
	"github.com/drivelay/fleet-api/internal/domain/repository"
)

// Asegura que NotificationRepo implementa repository.NotificationRepository.
var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación del puerto NotificationRepository sobre
// PostgreSQL. El feed es append-only: sin updates ni deletes.
type NotificationRepo struct {
	db DB
}

// NewNotificationRepository construye el adaptador del feed de notificaciones.
func NewNotificationRepository(db DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

const notificationColumns = `id, company_id, type, ts, user_id, vehicle_id, message, user_name, user_email, vehicle_plate, vehicle_name, duration_ms, distance_km`

// Create agrega una entrada al feed.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	query := `
		INSERT INTO notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, query,
		n.ID, n.CompanyID, n.Type, n.Timestamp, n.UserID, n.VehicleID, n.Message,
		n.UserName, n.UserEmail, n.VehiclePlate, n.VehicleName, n.DurationMs, n.DistanceKm,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListByCompany devuelve el feed de la empresa, lo más reciente primero.
func (r *NotificationRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Notification, error) {
	query := `
		SELECT ` + notificationColumns + ` FROM notifications
		WHERE company_id = $1 ORDER BY ts DESC`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(
			&n.ID, &n.CompanyID, &n.Type, &n.Timestamp, &n.UserID, &n.VehicleID, &n.Message,
			&n.UserName, &n.UserEmail, &n.VehiclePlate, &n.VehicleName, &n.DurationMs, &n.DistanceKm,
		); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}
