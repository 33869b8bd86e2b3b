package dto

import "time"

// CreateVehicleRequest alta de vehículo (solo rol elevado).
type CreateVehicleRequest struct {
	Name        string `json:"name"`
	Plate       string `json:"plate"`
	Description string `json:"description"`
}

// UpdateVehicleRequest edición de vehículo (solo rol elevado). Status admite
// los estados administrativos (Mantenimiento, Inactivo) además de Activo.
type UpdateVehicleRequest struct {
	Name        string `json:"name"`
	Plate       string `json:"plate"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// VehicleResponse vista de un vehículo, incluido el sub-estado de asignación.
type VehicleResponse struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"companyId"`
	Name        string     `json:"name"`
	Plate       string     `json:"plate"`
	Status      string     `json:"status"`
	Description string     `json:"description,omitempty"`
	AssignedTo  *string    `json:"assignedTo,omitempty"`
	AssignedAt  *time.Time `json:"assignedAt,omitempty"`
	StartKm     *int       `json:"startKm,omitempty"`
	LastAlertAt *time.Time `json:"lastAlertAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}
