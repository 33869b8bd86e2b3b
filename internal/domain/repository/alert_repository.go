package repository

import (
	"context"

	"github.com/drivelay/fleet-api/internal/domain/entity"
)

// AlertRepository define el puerto de persistencia para alertas de accidente.
type AlertRepository interface {
	Create(ctx context.Context, alert *entity.AccidentAlert) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.AccidentAlert, error)
}
