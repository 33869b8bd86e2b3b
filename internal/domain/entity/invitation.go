package entity

import "time"

// Estados de invitación. La única transición válida es Pendiente → Cancelada.
const (
	InvitationPending  = "Pendiente"
	InvitationCanceled = "Cancelada"
)

// Invitation es una invitación por email a unirse a una empresa.
type Invitation struct {
	ID        string
	CompanyID string
	Email     string
	Role      string
	Status    string
	CreatedAt time.Time
}
