package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/drivelay/fleet-api/internal/application/access"
	"github.com/drivelay/fleet-api/internal/application/dto"
	"github.com/drivelay/fleet-api/internal/application/notify"
	"github.com/drivelay/fleet-api/internal/domain"
	"github.com/drivelay/fleet-api/internal/domain/entity"
	"github.com/drivelay/fleet-api/internal/domain/repository"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Intentos máximos de generación de código antes de rendirse.
const maxCodeAttempts = 5

// CompanyUseCase casos de uso de empresas: creación, unión por código,
// resolución de la empresa activa y metadatos.
type CompanyUseCase struct {
	companies repository.CompanyRepository
	users     repository.UserRepository
	access    *access.Resolver
	notifier  *notify.Notifier
}

// NewCompanyUseCase construye el caso de uso con sus puertos.
func NewCompanyUseCase(
	companies repository.CompanyRepository,
	users repository.UserRepository,
	resolver *access.Resolver,
	notifier *notify.Notifier,
) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, users: users, access: resolver, notifier: notifier}
}

// Create crea una empresa con código de 6 caracteres [A-Z0-9], miembro y
// propietario inicial el actor, y la fija como su empresa activa.
// La unicidad del código se verifica con reintentos acotados.
func (uc *CompanyUseCase) Create(ctx context.Context, id entity.Identity, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if id.IsZero() {
		return nil, domain.ErrNotAuthenticated
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}

	code, err := uc.uniqueCode(ctx)
	if err != nil {
		return nil, err
	}
	company := &entity.Company{
		ID:                uuid.New().String(),
		Name:              strings.TrimSpace(in.Name),
		Code:              code,
		OwnerID:           id.UID,
		Members:           []string{id.UID},
		EmployeesEstimate: in.EmployeesEstimate,
		VehiclesEstimate:  in.VehiclesEstimate,
		CreatedAt:         time.Now(),
	}
	if err := uc.companies.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("crear empresa: %w", err)
	}
	if err := uc.users.SetCurrentCompany(ctx, id.UID, company.ID); err != nil {
		return nil, fmt.Errorf("fijar empresa activa: %w", err)
	}
	return toCompanyResponse(company), nil
}

// Join une al actor a la empresa cuyo código coincida. Unirse dos veces es
// un no-op (members tiene semántica de conjunto). Emite employee_join.
func (uc *CompanyUseCase) Join(ctx context.Context, id entity.Identity, in dto.JoinCompanyRequest) (*dto.CompanyResponse, error) {
	if id.IsZero() {
		return nil, domain.ErrNotAuthenticated
	}
	code := strings.ToUpper(strings.TrimSpace(in.Code))
	if code == "" {
		return nil, domain.ErrInvalidCode
	}
	company, err := uc.companies.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("buscar empresa por código: %w", err)
	}
	if company == nil {
		return nil, domain.ErrInvalidCode
	}
	if err := uc.companies.AddMember(ctx, company.ID, id.UID); err != nil {
		return nil, fmt.Errorf("agregar miembro: %w", err)
	}
	if err := uc.users.SetCurrentCompany(ctx, id.UID, company.ID); err != nil {
		return nil, fmt.Errorf("fijar empresa activa: %w", err)
	}
	uc.notifier.Publish(ctx, company.ID, id, notify.Event{
		Type:    entity.NotifEmployeeJoin,
		Message: "Empleado se unió a la empresa",
	})

	refreshed, err := uc.companies.GetByID(ctx, company.ID)
	if err != nil || refreshed == nil {
		// La unión ya se confirmó; servir la vista previa antes que fallar.
		return toCompanyResponse(company), nil
	}
	return toCompanyResponse(refreshed), nil
}

// Current resuelve la empresa activa del actor. Orden, primera coincidencia
// gana: campo currentCompanyId del perfil, primera empresa como miembro,
// primera empresa como propietario. Sin coincidencia → ErrNotAMember.
func (uc *CompanyUseCase) Current(ctx context.Context, id entity.Identity) (*dto.CompanyResponse, error) {
	if id.IsZero() {
		return nil, domain.ErrNotAuthenticated
	}
	user, err := uc.users.GetByID(ctx, id.UID)
	if err != nil {
		return nil, fmt.Errorf("leer perfil: %w", err)
	}
	if user != nil && user.CurrentCompanyID != "" {
		company, err := uc.companies.GetByID(ctx, user.CurrentCompanyID)
		if err != nil {
			return nil, fmt.Errorf("leer empresa activa: %w", err)
		}
		if company != nil {
			return toCompanyResponse(company), nil
		}
		// Empresa fijada que ya no existe: seguir con la cadena de respaldo.
	}
	company, err := uc.companies.FirstByMember(ctx, id.UID)
	if err != nil {
		return nil, fmt.Errorf("buscar membresía: %w", err)
	}
	if company == nil {
		company, err = uc.companies.FirstByOwner(ctx, id.UID)
		if err != nil {
			return nil, fmt.Errorf("buscar propiedad: %w", err)
		}
	}
	if company == nil {
		return nil, domain.ErrNotAMember
	}
	return toCompanyResponse(company), nil
}

// SetCurrent fija la empresa activa en el perfil del actor.
func (uc *CompanyUseCase) SetCurrent(ctx context.Context, id entity.Identity, companyID string) error {
	if id.IsZero() {
		return domain.ErrNotAuthenticated
	}
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return fmt.Errorf("leer empresa: %w", err)
	}
	if company == nil {
		return domain.ErrNotFound
	}
	if err := uc.users.SetCurrentCompany(ctx, id.UID, companyID); err != nil {
		return fmt.Errorf("fijar empresa activa: %w", err)
	}
	return nil
}

// ListMine lista todas las empresas del actor (miembro o propietario, sin
// duplicados). Para la empresa "actual" usar Current.
func (uc *CompanyUseCase) ListMine(ctx context.Context, id entity.Identity) (*dto.CompanyListResponse, error) {
	if id.IsZero() {
		return nil, domain.ErrNotAuthenticated
	}
	list, err := uc.companies.ListByUser(ctx, id.UID)
	if err != nil {
		return nil, fmt.Errorf("listar empresas: %w", err)
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{Items: items}, nil
}

// Get devuelve los metadatos de una empresa.
func (uc *CompanyUseCase) Get(ctx context.Context, companyID string) (*dto.CompanyResponse, error) {
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("leer empresa: %w", err)
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// Update edita nombre de la empresa. Solo roles elevados.
func (uc *CompanyUseCase) Update(ctx context.Context, id entity.Identity, companyID string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.requireElevated(ctx, id, companyID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) != "" {
		company.Name = strings.TrimSpace(in.Name)
	}
	if err := uc.companies.Update(ctx, company); err != nil {
		return nil, fmt.Errorf("actualizar empresa: %w", err)
	}
	return toCompanyResponse(company), nil
}

// SetLogo persiste la URL del logo ya subido al almacén de blobs.
func (uc *CompanyUseCase) SetLogo(ctx context.Context, id entity.Identity, companyID, url string) error {
	company, err := uc.requireElevated(ctx, id, companyID)
	if err != nil {
		return err
	}
	company.LogoURL = url
	if err := uc.companies.Update(ctx, company); err != nil {
		return fmt.Errorf("actualizar logo: %w", err)
	}
	return nil
}

func (uc *CompanyUseCase) requireElevated(ctx context.Context, id entity.Identity, companyID string) (*entity.Company, error) {
	role, err := uc.access.Role(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if !role.Elevated() {
		return nil, domain.ErrForbidden
	}
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("leer empresa: %w", err)
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return company, nil
}

func (uc *CompanyUseCase) uniqueCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := generateCode()
		existing, err := uc.companies.GetByCode(ctx, code)
		if err != nil {
			return "", fmt.Errorf("verificar código: %w", err)
		}
		if existing == nil {
			return code, nil
		}
	}
	return "", fmt.Errorf("no se obtuvo un código libre tras %d intentos", maxCodeAttempts)
}

// generateCode muestrea uniformemente 6 símbolos de [A-Z0-9].
func generateCode() string {
	b := make([]byte, entity.CodeLength)
	for i := range b {
		b[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
	}
	return string(b)
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:                c.ID,
		Name:              c.Name,
		Code:              c.Code,
		OwnerID:           c.OwnerID,
		Members:           c.Members,
		LogoURL:           c.LogoURL,
		EmployeesEstimate: c.EmployeesEstimate,
		VehiclesEstimate:  c.VehiclesEstimate,
		CreatedAt:         c.CreatedAt,
	}
}
