package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivelay/fleet-api/internal/application/dto"
	"github.com/drivelay/fleet-api/internal/application/usecase"
	"github.com/drivelay/fleet-api/internal/domain"
	"github.com/drivelay/fleet-api/internal/domain/entity"
)

// seedCompany crea una empresa con propietario "duenio" y un miembro raso
// "raso" sin fila de plantilla.
func seedCompany(t *testing.T, env *testEnv) *dto.CompanyResponse {
	t.Helper()
	companyUC := newCompanyUC(env)
	created, err := companyUC.Create(context.Background(), entity.Identity{UID: "duenio"}, dto.CreateCompanyRequest{Name: "Flota Norte"})
	require.NoError(t, err)
	_, err = companyUC.Join(context.Background(), entity.Identity{UID: "raso"}, dto.JoinCompanyRequest{Code: created.Code})
	require.NoError(t, err)
	return created
}

func TestAdd_MiembroRasoRecibeForbiddenSinEscribir(t *testing.T) {
	env := newTestEnv()
	company := seedCompany(t, env)
	uc := usecase.NewVehicleUseCase(env.vehicles, env.resolver)

	_, err := uc.Add(context.Background(), entity.Identity{UID: "raso"}, company.ID, dto.CreateVehicleRequest{
		Name:  "Camioneta 1",
		Plate: "ABC123",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, env.vehicles.writes, "el permiso se resuelve antes de tocar el almacén")
}

func TestAdd_PropietarioCreaVehiculoActivo(t *testing.T) {
	env := newTestEnv()
	company := seedCompany(t, env)
	uc := usecase.NewVehicleUseCase(env.vehicles, env.resolver)

	out, err := uc.Add(context.Background(), entity.Identity{UID: "duenio"}, company.ID, dto.CreateVehicleRequest{
		Name:  " Camioneta 1 ",
		Plate: " ABC123 ",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.VehicleActive, out.Status)
	assert.Equal(t, "Camioneta 1", out.Name)
	assert.Equal(t, "ABC123", out.Plate)
	assert.Nil(t, out.AssignedTo)
}

func TestAdd_SubAdministradorTambienPuede(t *testing.T) {
	env := newTestEnv()
	company := seedCompany(t, env)
	require.NoError(t, env.employees.Create(context.Background(), &entity.Employee{
		ID: "raso", CompanyID: company.ID, Role: entity.RoleSubAdministrador, Active: true,
	}))
	uc := usecase.NewVehicleUseCase(env.vehicles, env.resolver)

	_, err := uc.Add(context.Background(), entity.Identity{UID: "raso"}, company.ID, dto.CreateVehicleRequest{
		Name: "Camioneta 2", Plate: "DEF456",
	})
	assert.NoError(t, err)
}

func TestUpdate_RechazaEnUsoComoEstadoAdministrativo(t *testing.T) {
	env := newTestEnv()
	company := seedCompany(t, env)
	uc := usecase.NewVehicleUseCase(env.vehicles, env.resolver)
	owner := entity.Identity{UID: "duenio"}
	created, err := uc.Add(context.Background(), owner, company.ID, dto.CreateVehicleRequest{Name: "Camioneta", Plate: "ABC123"})
	require.NoError(t, err)

	// "En Uso" solo lo fija el ciclo retiro/devolución.
	_, err = uc.Update(context.Background(), owner, company.ID, created.ID, dto.UpdateVehicleRequest{Status: entity.VehicleInUse})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Update(context.Background(), owner, company.ID, created.ID, dto.UpdateVehicleRequest{Status: entity.VehicleMaintenance})
	require.NoError(t, err)
	assert.Equal(t, entity.VehicleMaintenance, out.Status)
}

func TestGetYList_LecturaAbiertaAMiembros(t *testing.T) {
	env := newTestEnv()
	company := seedCompany(t, env)
	uc := usecase.NewVehicleUseCase(env.vehicles, env.resolver)
	created, err := uc.Add(context.Background(), entity.Identity{UID: "duenio"}, company.ID, dto.CreateVehicleRequest{Name: "Camioneta", Plate: "ABC123"})
	require.NoError(t, err)

	// La lectura no exige rol: el handler solo exige token.
	got, err := uc.Get(context.Background(), company.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	list, err := uc.List(context.Background(), company.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDelete_VehiculoInexistenteEsNoOp(t *testing.T) {
	env := newTestEnv()
	company := seedCompany(t, env)
	uc := usecase.NewVehicleUseCase(env.vehicles, env.resolver)

	err := uc.Delete(context.Background(), entity.Identity{UID: "duenio"}, company.ID, "no-existe")
	assert.NoError(t, err)
}
