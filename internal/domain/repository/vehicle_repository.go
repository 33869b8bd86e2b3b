package repository

import (
	"context"
	"time"

	"github.com/drivelay/fleet-api/internal/domain/entity"
)

// VehicleRepository define el puerto de persistencia para vehículos,
// incluido el sub-estado de asignación del ciclo retiro/devolución.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	GetByID(ctx context.Context, companyID, vehicleID string) (*entity.Vehicle, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Vehicle, error)
	Update(ctx context.Context, vehicle *entity.Vehicle) error
	Delete(ctx context.Context, companyID, vehicleID string) error

	// Checkout asigna el vehículo al usuario con precondición de estado
	// (status debe ser "Activo"): compare-and-swap en una sola escritura.
	// Devuelve false si la precondición no se cumplió.
	Checkout(ctx context.Context, companyID, vehicleID, userID string, at time.Time, startKm int) (bool, error)
	// ClearAssignment limpia la terna de asignación y vuelve a "Activo".
	ClearAssignment(ctx context.Context, companyID, vehicleID string) error
	// MarkAlert sella last_alert_at sin tocar el estado operativo.
	MarkAlert(ctx context.Context, companyID, vehicleID string, at time.Time) error
}
