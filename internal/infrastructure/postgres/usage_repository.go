package postgres

import (
	"context"
	"fmt"

	"github.com/drivelay/fleet-api/internal/domain/entity"
	"github.com/drivelay/fleet-api/internal/domain/repository"
)

// Asegura que UsageRepo implementa repository.UsageRepository.
var _ repository.UsageRepository = (*UsageRepo)(nil)

// UsageRepo implementación del puerto UsageRepository sobre PostgreSQL.
// Solo inserta y lee: el historial es append-only.
type UsageRepo struct {
	db DB
}

// NewUsageRepository construye el adaptador de persistencia del historial.
func NewUsageRepository(db DB) *UsageRepo {
	return &UsageRepo{db: db}
}

const usageColumns = `id, vehicle_id, company_id, user_id, start_at, start_km, end_at, end_km, duration_ms, distance_km, notes, user_name, user_email, vehicle_plate, vehicle_name`

// Create persiste un registro de uso cerrado.
func (r *UsageRepo) Create(ctx context.Context, u *entity.UsageRecord) error {
	query := `
		INSERT INTO vehicle_usages (` + usageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.Exec(ctx, query,
		u.ID, u.VehicleID, u.CompanyID, u.UserID, u.StartAt, u.StartKm,
		u.EndAt, u.EndKm, u.DurationMs, u.DistanceKm, u.Notes,
		u.UserName, u.UserEmail, u.VehiclePlate, u.VehicleName,
	)
	if err != nil {
		return fmt.Errorf("insert usage: %w", err)
	}
	return nil
}

// ListByCompanyOrdered devuelve el historial ordenado por end_at descendente
// en el almacén. Requiere el índice compuesto (company_id, end_at DESC).
func (r *UsageRepo) ListByCompanyOrdered(ctx context.Context, companyID string) ([]*entity.UsageRecord, error) {
	query := `
		SELECT ` + usageColumns + ` FROM vehicle_usages
		WHERE company_id = $1 ORDER BY end_at DESC`
	return r.list(ctx, query, companyID)
}

// ListByCompany devuelve el historial sin orden garantizado; ruta de respaldo
// cuando el índice compuesto no está disponible.
func (r *UsageRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.UsageRecord, error) {
	query := `SELECT ` + usageColumns + ` FROM vehicle_usages WHERE company_id = $1`
	return r.list(ctx, query, companyID)
}

func (r *UsageRepo) list(ctx context.Context, query, companyID string) ([]*entity.UsageRecord, error) {
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list usages: %w", err)
	}
	defer rows.Close()

	var list []*entity.UsageRecord
	for rows.Next() {
		var u entity.UsageRecord
		if err := rows.Scan(
			&u.ID, &u.VehicleID, &u.CompanyID, &u.UserID, &u.StartAt, &u.StartKm,
			&u.EndAt, &u.EndKm, &u.DurationMs, &u.DistanceKm, &u.Notes,
			&u.UserName, &u.UserEmail, &u.VehiclePlate, &u.VehicleName,
		); err != nil {
			return nil, fmt.Errorf("scan usage: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
