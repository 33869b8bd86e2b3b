package access_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivelay/fleet-api/internal/application/access"
	"github.com/drivelay/fleet-api/internal/domain"
	"github.com/drivelay/fleet-api/internal/domain/entity"
	"github.com/drivelay/fleet-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos: solo las lecturas que usa el resolutor. Los métodos no
// implementados del puerto embebido entran en pánico si algún test los toca.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	repository.CompanyRepository
	company *entity.Company
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	if f.company != nil && f.company.ID == id {
		return f.company, nil
	}
	return nil, nil
}

type fakeEmployeeRepo struct {
	repository.EmployeeRepository
	row *entity.Employee
}

func (f *fakeEmployeeRepo) FindForUser(_ context.Context, companyID, userID, email string) (*entity.Employee, error) {
	if f.row == nil || f.row.CompanyID != companyID {
		return nil, nil
	}
	if f.row.ID == userID || (email != "" && f.row.Email == email) {
		return f.row, nil
	}
	return nil, nil
}

func newResolver(company *entity.Company, row *entity.Employee) *access.Resolver {
	return access.NewResolver(&fakeCompanyRepo{company: company}, &fakeEmployeeRepo{row: row})
}

var testCompany = &entity.Company{
	ID:      "emp-1",
	Name:    "Transportes del Sur",
	OwnerID: "duenio",
	Members: []string{"duenio", "empleado-1"},
}

func TestRole_PropietarioEsOwner(t *testing.T) {
	r := newResolver(testCompany, nil)

	role, err := r.Role(context.Background(), "emp-1", entity.Identity{UID: "duenio"})
	require.NoError(t, err)
	assert.Equal(t, access.Owner, role)
	assert.True(t, role.Elevated())
}

func TestRole_FilaSubAdministradorEsSubAdmin(t *testing.T) {
	row := &entity.Employee{ID: "empleado-1", CompanyID: "emp-1", Role: entity.RoleSubAdministrador}
	r := newResolver(testCompany, row)

	role, err := r.Role(context.Background(), "emp-1", entity.Identity{UID: "empleado-1"})
	require.NoError(t, err)
	assert.Equal(t, access.SubAdmin, role)
	assert.True(t, role.Elevated())
}

func TestRole_FilaPorEmailTambienResuelve(t *testing.T) {
	// La fila de plantilla puede no compartir id con el usuario: el email es
	// la segunda llave de correlación.
	row := &entity.Employee{ID: "fila-suelta", CompanyID: "emp-1", Role: entity.RoleAdministrador, Email: "ana@flota.co"}
	r := newResolver(testCompany, row)

	role, err := r.Role(context.Background(), "emp-1", entity.Identity{UID: "otro-id", Email: "ana@flota.co"})
	require.NoError(t, err)
	assert.Equal(t, access.SubAdmin, role)
}

func TestRole_FilaEmpleadoEsMember(t *testing.T) {
	row := &entity.Employee{ID: "empleado-1", CompanyID: "emp-1", Role: entity.RoleEmpleado}
	r := newResolver(testCompany, row)

	role, err := r.Role(context.Background(), "emp-1", entity.Identity{UID: "empleado-1"})
	require.NoError(t, err)
	assert.Equal(t, access.Member, role)
	assert.False(t, role.Elevated())
}

func TestRole_SinFilaEsNone(t *testing.T) {
	r := newResolver(testCompany, nil)

	role, err := r.Role(context.Background(), "emp-1", entity.Identity{UID: "desconocido"})
	require.NoError(t, err)
	assert.Equal(t, access.None, role)
}

func TestRole_SinIdentidadFalla(t *testing.T) {
	r := newResolver(testCompany, nil)

	_, err := r.Role(context.Background(), "emp-1", entity.Identity{})
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestRole_EmpresaInexistenteFalla(t *testing.T) {
	r := newResolver(testCompany, nil)

	_, err := r.Role(context.Background(), "no-existe", entity.Identity{UID: "duenio"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCanManageVehicles_SoloRolesElevados(t *testing.T) {
	row := &entity.Employee{ID: "empleado-1", CompanyID: "emp-1", Role: entity.RoleEmpleado}
	r := newResolver(testCompany, row)

	ok, err := r.CanManageVehicles(context.Background(), "emp-1", entity.Identity{UID: "duenio"})
	require.NoError(t, err)
	assert.True(t, ok, "el propietario gestiona vehículos")

	ok, err = r.CanManageVehicles(context.Background(), "emp-1", entity.Identity{UID: "empleado-1"})
	require.NoError(t, err)
	assert.False(t, ok, "un empleado raso no gestiona vehículos")
}
