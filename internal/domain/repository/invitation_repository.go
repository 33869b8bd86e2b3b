package repository

import (
	"context"

	"github.com/drivelay/fleet-api/internal/domain/entity"
)

// InvitationRepository define el puerto de persistencia para invitaciones.
type InvitationRepository interface {
	Create(ctx context.Context, invitation *entity.Invitation) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Invitation, error)
	UpdateStatus(ctx context.Context, companyID, invitationID, status string) error
	Delete(ctx context.Context, companyID, invitationID string) error
}
