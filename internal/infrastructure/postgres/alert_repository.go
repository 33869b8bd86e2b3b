package postgres

import (
	"context"
	"fmt"

	"github.com/drivelay/fleet-api/internal/domain/entity"
	"github.com/drivelay/fleet-api/internal/domain/repository"
)

// Asegura que AlertRepo implementa repository.AlertRepository.
var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación del puerto AlertRepository sobre PostgreSQL.
type AlertRepo struct {
	db DB
}

// NewAlertRepository construye el adaptador de persistencia de alertas.
func NewAlertRepository(db DB) *AlertRepo {
	return &AlertRepo{db: db}
}

// Create persiste una alerta de accidente.
func (r *AlertRepo) Create(ctx context.Context, a *entity.AccidentAlert) error {
	query := `
		INSERT INTO alerts (id, company_id, vehicle_id, user_id, ts, status, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, a.ID, a.CompanyID, a.VehicleID, a.UserID, a.Timestamp, a.Status, a.Message)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// ListByCompany devuelve las alertas de la empresa, lo más reciente primero.
func (r *AlertRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.AccidentAlert, error) {
	query := `
		SELECT id, company_id, vehicle_id, user_id, ts, status, message
		FROM alerts WHERE company_id = $1 ORDER BY ts DESC`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	var list []*entity.AccidentAlert
	for rows.Next() {
		var a entity.AccidentAlert
		if err := rows.Scan(&a.ID, &a.CompanyID, &a.VehicleID, &a.UserID, &a.Timestamp, &a.Status, &a.Message); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
