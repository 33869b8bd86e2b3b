package entity

import "time"

// CodeLength longitud del código de invitación de empresa.
const CodeLength = 6

// Company representa una organización dueña de una flota y su plantilla.
// Invariante: OwnerID siempre figura en Members.
type Company struct {
	ID                string
	Name              string
	Code              string // 6 caracteres [A-Z0-9], generado al crear
	OwnerID           string
	Members           []string
	LogoURL           string
	EmployeesEstimate int
	VehiclesEstimate  int
	CreatedAt         time.Time
}

// HasMember informa si el usuario figura en la lista de miembros.
func (c *Company) HasMember(userID string) bool {
	for _, m := range c.Members {
		if m == userID {
			return true
		}
	}
	return false
}
