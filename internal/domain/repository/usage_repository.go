package repository

import (
	"context"

	"github.com/drivelay/fleet-api/internal/domain/entity"
)

// UsageRepository define el puerto del historial de usos (append-only).
type UsageRepository interface {
	Create(ctx context.Context, record *entity.UsageRecord) error
	// ListByCompanyOrdered es la ruta primaria: orden end_at descendente en
	// el almacén (requiere índice compuesto).
	ListByCompanyOrdered(ctx context.Context, companyID string) ([]*entity.UsageRecord, error)
	// ListByCompany es la ruta de respaldo sin orden; el llamador ordena en
	// memoria. No es código muerto: el índice puede no existir aún.
	ListByCompany(ctx context.Context, companyID string) ([]*entity.UsageRecord, error)
}
