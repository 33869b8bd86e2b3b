package entity

import "time"

// Roles de plantilla tal como se persisten (valores visibles al usuario).
const (
	RoleAdministrador    = "Administrador"
	RoleSubAdministrador = "Sub-administrador"
	RoleEmpleado         = "Empleado"
	RoleMiembro          = "Miembro"
)

// Employee es una fila de la plantilla de una empresa. Puede existir como
// documento propio o sintetizarse en lectura desde la membresía cruda
// (ver EmployeeUseCase.List).
type Employee struct {
	ID        string
	CompanyID string
	Name      string
	Role      string
	Active    bool
	Email     string
	Phone     string
	CreatedAt time.Time
}
