package repository

import (
	"context"

	"github.com/drivelay/fleet-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para la plantilla.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, companyID, employeeID string) (*entity.Employee, error)
	// FindForUser busca la fila de plantilla del actor dentro de una empresa,
	// por id de usuario o por email. (nil, nil) si no hay fila.
	FindForUser(ctx context.Context, companyID, userID, email string) (*entity.Employee, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, companyID, employeeID string) error
}
