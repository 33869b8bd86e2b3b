package postgres_test

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivelay/fleet-api/internal/infrastructure/postgres"
)

func newCompanyMock(t *testing.T) (pgxmock.PgxPoolIface, *postgres.CompanyRepo) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, postgres.NewCompanyRepository(mock)
}

var companyColumns = []string{
	"id", "name", "code", "owner_id", "members", "logo_url",
	"employees_estimate", "vehicles_estimate", "created_at",
}

func TestAddMember_LaUnionDeConjuntoViajaEnElSQL(t *testing.T) {
	mock, repo := newCompanyMock(t)

	// La idempotencia no depende del llamador: el UPDATE solo aplica si el
	// usuario aún no figura en members.
	mock.ExpectExec(`UPDATE companies SET members = array_append\(members, \$2\)\s+WHERE id = \$1 AND NOT \(\$2 = ANY\(members\)\)`).
		WithArgs("emp-1", "u1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.AddMember(context.Background(), "emp-1", "u1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByCode_SinFilaDevuelveNilNil(t *testing.T) {
	mock, repo := newCompanyMock(t)

	mock.ExpectQuery(`SELECT .+ FROM companies WHERE code = \$1`).
		WithArgs("ZZZZZZ").
		WillReturnRows(pgxmock.NewRows(companyColumns))

	c, err := repo.GetByCode(context.Background(), "ZZZZZZ")
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByCode_FilaExistente(t *testing.T) {
	mock, repo := newCompanyMock(t)
	created := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM companies WHERE code = \$1`).
		WithArgs("AB12CD").
		WillReturnRows(pgxmock.NewRows(companyColumns).
			AddRow("emp-1", "Flota Norte", "AB12CD", "duenio", []string{"duenio", "u1"}, "", 10, 4, created))

	c, err := repo.GetByCode(context.Background(), "AB12CD")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Flota Norte", c.Name)
	assert.Equal(t, []string{"duenio", "u1"}, c.Members)
	assert.NoError(t, mock.ExpectationsWereMet())
}
