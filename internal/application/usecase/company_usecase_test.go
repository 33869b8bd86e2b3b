package usecase_test

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivelay/fleet-api/internal/application/dto"
	"github.com/drivelay/fleet-api/internal/application/usecase"
	"github.com/drivelay/fleet-api/internal/domain"
	"github.com/drivelay/fleet-api/internal/domain/entity"
)

func newCompanyUC(env *testEnv) *usecase.CompanyUseCase {
	return usecase.NewCompanyUseCase(env.companies, env.users, env.resolver, env.notifier)
}

var codePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

func TestCreate_GeneraCodigoYFijaEmpresaActiva(t *testing.T) {
	env := newTestEnv()
	uc := newCompanyUC(env)
	actor := entity.Identity{UID: "duenio", Email: "duenio@flota.co"}

	out, err := uc.Create(context.Background(), actor, dto.CreateCompanyRequest{
		Name:              "Transportes del Sur",
		EmployeesEstimate: 10,
		VehiclesEstimate:  4,
	})
	require.NoError(t, err)

	assert.Regexp(t, codePattern, out.Code, "código de 6 caracteres [A-Z0-9]")
	assert.Equal(t, "duenio", out.OwnerID)
	assert.Equal(t, []string{"duenio"}, out.Members, "el propietario nace como miembro")

	// La empresa recién creada queda como activa en el perfil del actor.
	user, err := env.users.GetByID(context.Background(), "duenio")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, out.ID, user.CurrentCompanyID)
}

func TestCreate_NombreVacioEsInvalido(t *testing.T) {
	uc := newCompanyUC(newTestEnv())

	_, err := uc.Create(context.Background(), entity.Identity{UID: "u1"}, dto.CreateCompanyRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_SinIdentidadFalla(t *testing.T) {
	uc := newCompanyUC(newTestEnv())

	_, err := uc.Create(context.Background(), entity.Identity{}, dto.CreateCompanyRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestJoin_NormalizaCodigoYEmiteNotificacion(t *testing.T) {
	env := newTestEnv()
	uc := newCompanyUC(env)
	owner := entity.Identity{UID: "duenio"}
	created, err := uc.Create(context.Background(), owner, dto.CreateCompanyRequest{Name: "Flota Norte"})
	require.NoError(t, err)

	// El código llega en minúsculas y con espacios: se normaliza antes de buscar.
	joiner := entity.Identity{UID: "nuevo", Email: "nuevo@flota.co"}
	out, err := uc.Join(context.Background(), joiner, dto.JoinCompanyRequest{Code: "  " + strings.ToLower(created.Code) + " "})
	require.NoError(t, err)

	assert.Equal(t, created.ID, out.ID)
	assert.Contains(t, out.Members, "nuevo")

	require.Len(t, env.notifs.created, 1)
	assert.Equal(t, entity.NotifEmployeeJoin, env.notifs.created[0].Type)
	assert.Equal(t, "nuevo", env.notifs.created[0].UserID)
}

func TestJoin_DosVecesDejaUnSoloMiembro(t *testing.T) {
	env := newTestEnv()
	uc := newCompanyUC(env)
	created, err := uc.Create(context.Background(), entity.Identity{UID: "duenio"}, dto.CreateCompanyRequest{Name: "Flota Norte"})
	require.NoError(t, err)

	joiner := entity.Identity{UID: "nuevo"}
	_, err = uc.Join(context.Background(), joiner, dto.JoinCompanyRequest{Code: created.Code})
	require.NoError(t, err)
	out, err := uc.Join(context.Background(), joiner, dto.JoinCompanyRequest{Code: created.Code})
	require.NoError(t, err)

	count := 0
	for _, m := range out.Members {
		if m == "nuevo" {
			count++
		}
	}
	assert.Equal(t, 1, count, "unirse dos veces deja exactamente una ocurrencia")
}

func TestJoin_CodigoInexistenteFalla(t *testing.T) {
	uc := newCompanyUC(newTestEnv())

	_, err := uc.Join(context.Background(), entity.Identity{UID: "u1"}, dto.JoinCompanyRequest{Code: "ZZZZZZ"})
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
}

func TestCurrent_CadenaDeResolucion(t *testing.T) {
	env := newTestEnv()
	uc := newCompanyUC(env)
	owner := entity.Identity{UID: "duenio"}
	created, err := uc.Create(context.Background(), owner, dto.CreateCompanyRequest{Name: "Flota Norte"})
	require.NoError(t, err)

	// 1) Campo del perfil.
	out, err := uc.Current(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, created.ID, out.ID)

	// 2) Perfil apuntando a una empresa borrada: cae a la membresía.
	require.NoError(t, env.users.SetCurrentCompany(context.Background(), "duenio", "fantasma"))
	out, err = uc.Current(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, created.ID, out.ID)

	// 3) Sin perfil ni membresía ni propiedad → sin empresa.
	_, err = uc.Current(context.Background(), entity.Identity{UID: "forastero"})
	assert.ErrorIs(t, err, domain.ErrNotAMember)
}

func TestUpdate_SoloRolElevado(t *testing.T) {
	env := newTestEnv()
	uc := newCompanyUC(env)
	created, err := uc.Create(context.Background(), entity.Identity{UID: "duenio"}, dto.CreateCompanyRequest{Name: "Flota Norte"})
	require.NoError(t, err)
	_, err = uc.Join(context.Background(), entity.Identity{UID: "raso"}, dto.JoinCompanyRequest{Code: created.Code})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), entity.Identity{UID: "raso"}, created.ID, dto.UpdateCompanyRequest{Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.Update(context.Background(), entity.Identity{UID: "duenio"}, created.ID, dto.UpdateCompanyRequest{Name: "Flota Renombrada"})
	require.NoError(t, err)
	assert.Equal(t, "Flota Renombrada", out.Name)
}
