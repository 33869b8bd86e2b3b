package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivelay/fleet-api/internal/application/dto"
	"github.com/drivelay/fleet-api/internal/application/fleet"
	"github.com/drivelay/fleet-api/internal/application/usecase"
	"github.com/drivelay/fleet-api/internal/domain/entity"
	"github.com/drivelay/fleet-api/pkg/logger"
)

// Ciclo completo sobre los fakes compartidos: crear empresa, unirse por
// código, registrar vehículo, retirarlo y devolverlo. Cada paso usa el caso
// de uso real con el mismo grafo de dependencias que main.
func TestEscenario_CrearUnirseRetirarDevolver(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	companyUC := usecase.NewCompanyUseCase(env.companies, env.users, env.resolver, env.notifier)
	vehicleUC := usecase.NewVehicleUseCase(env.vehicles, env.resolver)
	fleetUC := fleet.NewUseCase(env.vehicles, env.usages, env.alerts, env.users, env.notifier, env.metrics, logger.Nop())

	duenio := entity.Identity{UID: "duenio", Email: "duenio@flota.co"}
	conductor := entity.Identity{UID: "vera", Email: "vera@flota.co"}

	company, err := companyUC.Create(ctx, duenio, dto.CreateCompanyRequest{Name: "Flota Norte"})
	require.NoError(t, err)
	assert.Equal(t, "duenio", company.OwnerID)
	assert.Equal(t, []string{"duenio"}, company.Members)

	joined, err := companyUC.Join(ctx, conductor, dto.JoinCompanyRequest{Code: company.Code})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"duenio", "vera"}, joined.Members)
	require.Len(t, env.notifs.created, 1)
	assert.Equal(t, entity.NotifEmployeeJoin, env.notifs.created[0].Type)
	assert.Equal(t, "vera", env.notifs.created[0].UserID)

	vehicle, err := vehicleUC.Add(ctx, duenio, company.ID, dto.CreateVehicleRequest{Name: "Camioneta 1", Plate: "ABC-123"})
	require.NoError(t, err)
	assert.Equal(t, entity.VehicleActive, vehicle.Status)

	started, err := fleetUC.Start(ctx, conductor, company.ID, vehicle.ID, dto.StartUsageRequest{StartKm: 1000})
	require.NoError(t, err)
	assert.Equal(t, entity.VehicleInUse, started.Status)
	require.NotNil(t, started.AssignedTo)
	assert.Equal(t, "vera", *started.AssignedTo)

	record, err := fleetUC.Finish(ctx, conductor, company.ID, vehicle.ID, dto.FinishUsageRequest{EndKm: 1050})
	require.NoError(t, err)
	assert.Equal(t, 50, record.DistanceKm)
	assert.Equal(t, "ABC-123", record.VehiclePlate)

	// La devolución deja el vehículo disponible y sin asignación.
	after, err := vehicleUC.Get(ctx, company.ID, vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.VehicleActive, after.Status)
	assert.Nil(t, after.AssignedTo)
	assert.Nil(t, after.AssignedAt)
	assert.Nil(t, after.StartKm)

	types := make([]string, 0, len(env.notifs.created))
	for _, n := range env.notifs.created {
		types = append(types, n.Type)
	}
	assert.Contains(t, types, entity.NotifVehicleStart)
	assert.Contains(t, types, entity.NotifVehicleFinish)

	history, err := fleetUC.History(ctx, duenio, company.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, record.ID, history[0].ID)
}
