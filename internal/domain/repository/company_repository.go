package repository

import (
	"context"

	"github.com/drivelay/fleet-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	// GetByCode busca por código exacto (mayúsculas). (nil, nil) si no hay match.
	GetByCode(ctx context.Context, code string) (*entity.Company, error)
	// AddMember agrega el usuario a members con semántica de conjunto:
	// unirse dos veces deja una sola ocurrencia.
	AddMember(ctx context.Context, companyID, userID string) error
	// FirstByMember y FirstByOwner sostienen la cadena de resolución de
	// "empresa actual"; devuelven la primera coincidencia o (nil, nil).
	FirstByMember(ctx context.Context, userID string) (*entity.Company, error)
	FirstByOwner(ctx context.Context, userID string) (*entity.Company, error)
	// ListByUser une membresía y propiedad, sin duplicados.
	ListByUser(ctx context.Context, userID string) ([]*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
}
