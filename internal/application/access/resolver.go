package access

import (
	"context"
	"fmt"

	"github.com/drivelay/fleet-api/internal/domain"
	"github.com/drivelay/fleet-api/internal/domain/entity"
	"github.com/drivelay/fleet-api/internal/domain/repository"
)

// Role es el rol efectivo de un usuario dentro de una empresa.
type Role string

const (
	Owner    Role = "owner"
	SubAdmin Role = "subadmin"
	Member   Role = "member"
	None     Role = "none"
)

// Elevated informa si el rol permite mutar vehículos e invitar empleados.
func (r Role) Elevated() bool { return r == Owner || r == SubAdmin }

// Resolver determina el rol efectivo de una identidad en una empresa.
// Lectura pura: no tiene efectos secundarios ni reintenta.
type Resolver struct {
	companies repository.CompanyRepository
	employees repository.EmployeeRepository
}

// NewResolver construye el resolutor con los puertos de lectura.
func NewResolver(companies repository.CompanyRepository, employees repository.EmployeeRepository) *Resolver {
	return &Resolver{companies: companies, employees: employees}
}

// Role resuelve el rol efectivo: propietario → Owner; si no, la fila de
// plantilla del actor (por id o email) decide SubAdmin/Member; sin fila → None.
func (r *Resolver) Role(ctx context.Context, companyID string, id entity.Identity) (Role, error) {
	if id.IsZero() {
		return None, domain.ErrNotAuthenticated
	}
	company, err := r.companies.GetByID(ctx, companyID)
	if err != nil {
		return None, fmt.Errorf("resolver rol: %w", err)
	}
	if company == nil {
		return None, domain.ErrNotFound
	}
	if company.OwnerID == id.UID {
		return Owner, nil
	}
	emp, err := r.employees.FindForUser(ctx, companyID, id.UID, id.Email)
	if err != nil {
		return None, fmt.Errorf("resolver rol: %w", err)
	}
	if emp == nil {
		return None, nil
	}
	switch emp.Role {
	case entity.RoleAdministrador, entity.RoleSubAdministrador:
		return SubAdmin, nil
	default:
		return Member, nil
	}
}

// CanManageVehicles informa si el actor puede crear/editar/borrar vehículos
// (CRUD = Owner ∨ SubAdmin).
func (r *Resolver) CanManageVehicles(ctx context.Context, companyID string, id entity.Identity) (bool, error) {
	role, err := r.Role(ctx, companyID, id)
	if err != nil {
		return false, err
	}
	return role.Elevated(), nil
}
