package dto

import "time"

// AddEmployeeRequest alta manual en la plantilla (solo rol elevado).
type AddEmployeeRequest struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UpdateEmployeeRequest edición de una fila de plantilla (promover/degradar).
type UpdateEmployeeRequest struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Active *bool  `json:"active"`
	Phone  string `json:"phone"`
}

// EmployeeResponse fila de la plantilla efectiva (persistida o sintetizada).
type EmployeeResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// InviteRequest invitación por email (solo rol elevado).
type InviteRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// InvitationResponse vista de una invitación.
type InvitationResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
