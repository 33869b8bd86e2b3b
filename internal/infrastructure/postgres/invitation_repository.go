package postgres

import (
	"context"
	"fmt"

	"github.com/drivelay/fleet-api/internal/domain/entity"
	"github.com/drivelay/fleet-api/internal/domain/repository"
)

// Asegura que InvitationRepo implementa repository.InvitationRepository.
var _ repository.InvitationRepository = (*InvitationRepo)(nil)

// InvitationRepo implementación del puerto InvitationRepository sobre PostgreSQL.
type InvitationRepo struct {
	db DB
}

// NewInvitationRepository construye el adaptador de persistencia de invitaciones.
func NewInvitationRepository(db DB) *InvitationRepo {
	return &InvitationRepo{db: db}
}

// Create persiste una invitación.
func (r *InvitationRepo) Create(ctx context.Context, i *entity.Invitation) error {
	query := `
		INSERT INTO invitations (id, company_id, email, role, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, i.ID, i.CompanyID, i.Email, i.Role, i.Status, i.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert invitation: %w", err)
	}
	return nil
}

// ListByCompany devuelve las invitaciones de una empresa.
func (r *InvitationRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Invitation, error) {
	query := `
		SELECT id, company_id, email, role, status, created_at
		FROM invitations WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invitation
	for rows.Next() {
		var i entity.Invitation
		if err := rows.Scan(&i.ID, &i.CompanyID, &i.Email, &i.Role, &i.Status, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invitation: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// UpdateStatus escribe el estado de una invitación.
func (r *InvitationRepo) UpdateStatus(ctx context.Context, companyID, invitationID, status string) error {
	query := `UPDATE invitations SET status = $3 WHERE company_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, companyID, invitationID, status)
	if err != nil {
		return fmt.Errorf("update invitation status: %w", err)
	}
	return nil
}

// Delete elimina una invitación.
func (r *InvitationRepo) Delete(ctx context.Context, companyID, invitationID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM invitations WHERE company_id = $1 AND id = $2`, companyID, invitationID)
	if err != nil {
		return fmt.Errorf("delete invitation: %w", err)
	}
	return nil
}
