package postgres_test

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivelay/fleet-api/internal/domain/entity"
	"github.com/drivelay/fleet-api/internal/infrastructure/postgres"
)

func newVehicleMock(t *testing.T) (pgxmock.PgxPoolIface, *postgres.VehicleRepo) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, postgres.NewVehicleRepository(mock)
}

func TestCheckout_PrecondicionCumplidaDevuelveTrue(t *testing.T) {
	mock, repo := newVehicleMock(t)
	at := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	// El compare-and-swap viaja en la cláusula WHERE: estado esperado 'Activo'.
	mock.ExpectExec(`UPDATE vehicles`).
		WithArgs("emp-1", "v1", "u1", at, 1000, entity.VehicleInUse, entity.VehicleActive).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	ok, err := repo.Checkout(context.Background(), "emp-1", "v1", "u1", at, 1000)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckout_CeroFilasSignificaNoDisponible(t *testing.T) {
	mock, repo := newVehicleMock(t)
	at := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE vehicles`).
		WithArgs("emp-1", "v1", "u2", at, 1500, entity.VehicleInUse, entity.VehicleActive).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err := repo.Checkout(context.Background(), "emp-1", "v1", "u2", at, 1500)
	require.NoError(t, err)
	assert.False(t, ok, "otro actor ganó la carrera: no es error, es rechazo")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearAssignment_VuelveAActivoYLimpiaLaTerna(t *testing.T) {
	mock, repo := newVehicleMock(t)

	mock.ExpectExec(`UPDATE vehicles`).
		WithArgs("emp-1", "v1", entity.VehicleActive).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.ClearAssignment(context.Background(), "emp-1", "v1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_SinFilaDevuelveNilNil(t *testing.T) {
	mock, repo := newVehicleMock(t)

	mock.ExpectQuery(`SELECT .+ FROM vehicles`).
		WithArgs("emp-1", "no-existe").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "company_id", "name", "plate", "status", "description",
			"assigned_to", "assigned_at", "start_km", "last_alert_at", "created_at",
		}))

	v, err := repo.GetByID(context.Background(), "emp-1", "no-existe")
	require.NoError(t, err)
	assert.Nil(t, v)
	assert.NoError(t, mock.ExpectationsWereMet())
}
