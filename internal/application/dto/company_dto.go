package dto

import "time"

// CreateCompanyRequest datos para crear una empresa.
type CreateCompanyRequest struct {
	Name              string `json:"name"`
	EmployeesEstimate int    `json:"employeesEstimate"`
	VehiclesEstimate  int    `json:"vehiclesEstimate"`
}

// JoinCompanyRequest unirse a una empresa por código.
type JoinCompanyRequest struct {
	Code string `json:"code"`
}

// UpdateCompanyRequest edición de metadatos de la empresa (solo rol elevado).
type UpdateCompanyRequest struct {
	Name string `json:"name"`
}

// CompanyResponse vista de una empresa.
type CompanyResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Code              string    `json:"code"`
	OwnerID           string    `json:"ownerId"`
	Members           []string  `json:"members"`
	LogoURL           string    `json:"logoUrl,omitempty"`
	EmployeesEstimate int       `json:"employeesEstimate"`
	VehiclesEstimate  int       `json:"vehiclesEstimate"`
	CreatedAt         time.Time `json:"createdAt"`
}

// CompanyListResponse listado de empresas del usuario.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
}
