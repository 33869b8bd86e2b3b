package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/drivelay/fleet-api/internal/domain/entity"
	"github.com/drivelay/fleet-api/internal/domain/repository"
)

// Asegura que VehicleRepo implementa repository.VehicleRepository.
var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// VehicleRepo implementación del puerto VehicleRepository sobre PostgreSQL.
type VehicleRepo struct {
	db DB
}

// NewVehicleRepository construye el adaptador de persistencia de vehículos.
func NewVehicleRepository(db DB) *VehicleRepo {
	return &VehicleRepo{db: db}
}

const vehicleColumns = `id, company_id, name, plate, status, description, assigned_to, assigned_at, start_km, last_alert_at, created_at`

// Create persiste un vehículo nuevo.
func (r *VehicleRepo) Create(ctx context.Context, v *entity.Vehicle) error {
	query := `
		INSERT INTO vehicles (` + vehicleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		v.ID, v.CompanyID, v.Name, v.Plate, v.Status, v.Description,
		v.AssignedTo, v.AssignedAt, v.StartKm, v.LastAlertAt, v.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vehicle: %w", err)
	}
	return nil
}

// GetByID obtiene un vehículo de la empresa. (nil, nil) si no existe.
func (r *VehicleRepo) GetByID(ctx context.Context, companyID, vehicleID string) (*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE company_id = $1 AND id = $2`
	var v entity.Vehicle
	err := r.db.QueryRow(ctx, query, companyID, vehicleID).Scan(
		&v.ID, &v.CompanyID, &v.Name, &v.Plate, &v.Status, &v.Description,
		&v.AssignedTo, &v.AssignedAt, &v.StartKm, &v.LastAlertAt, &v.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return &v, nil
}

// ListByCompany devuelve la flota de una empresa.
func (r *VehicleRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE company_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	var list []*entity.Vehicle
	for rows.Next() {
		var v entity.Vehicle
		if err := rows.Scan(
			&v.ID, &v.CompanyID, &v.Name, &v.Plate, &v.Status, &v.Description,
			&v.AssignedTo, &v.AssignedAt, &v.StartKm, &v.LastAlertAt, &v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Update escribe los campos editables y la terna de asignación tal cual viene
// en la entidad.
func (r *VehicleRepo) Update(ctx context.Context, v *entity.Vehicle) error {
	query := `
		UPDATE vehicles
		SET name = $3, plate = $4, status = $5, description = $6,
		    assigned_to = $7, assigned_at = $8, start_km = $9
		WHERE company_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query,
		v.CompanyID, v.ID, v.Name, v.Plate, v.Status, v.Description,
		v.AssignedTo, v.AssignedAt, v.StartKm,
	)
	if err != nil {
		return fmt.Errorf("update vehicle: %w", err)
	}
	return nil
}

// Delete elimina un vehículo de la flota.
func (r *VehicleRepo) Delete(ctx context.Context, companyID, vehicleID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM vehicles WHERE company_id = $1 AND id = $2`, companyID, vehicleID)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	return nil
}

// Checkout escribe la asignación con precondición status = 'Activo' en la
// misma sentencia. Cero filas afectadas significa que otro actor ganó la
// carrera (o el vehículo no estaba disponible).
func (r *VehicleRepo) Checkout(ctx context.Context, companyID, vehicleID, userID string, at time.Time, startKm int) (bool, error) {
	query := `
		UPDATE vehicles
		SET status = $6, assigned_to = $3, assigned_at = $4, start_km = $5
		WHERE company_id = $1 AND id = $2 AND status = $7`
	tag, err := r.db.Exec(ctx, query, companyID, vehicleID, userID, at, startKm, entity.VehicleInUse, entity.VehicleActive)
	if err != nil {
		return false, fmt.Errorf("checkout vehicle: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ClearAssignment limpia la terna de asignación y devuelve el vehículo a
// 'Activo'.
func (r *VehicleRepo) ClearAssignment(ctx context.Context, companyID, vehicleID string) error {
	query := `
		UPDATE vehicles
		SET status = $3, assigned_to = NULL, assigned_at = NULL, start_km = NULL
		WHERE company_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, companyID, vehicleID, entity.VehicleActive)
	if err != nil {
		return fmt.Errorf("clear assignment: %w", err)
	}
	return nil
}

// MarkAlert sella last_alert_at sin tocar estado ni asignación.
func (r *VehicleRepo) MarkAlert(ctx context.Context, companyID, vehicleID string, at time.Time) error {
	query := `UPDATE vehicles SET last_alert_at = $3 WHERE company_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, companyID, vehicleID, at)
	if err != nil {
		return fmt.Errorf("mark alert: %w", err)
	}
	return nil
}
