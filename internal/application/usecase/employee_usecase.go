package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/drivelay/fleet-api/internal/application/access"
	"github.com/drivelay/fleet-api/internal/application/dto"
	"github.com/drivelay/fleet-api/internal/domain"
	"github.com/drivelay/fleet-api/internal/domain/entity"
	"github.com/drivelay/fleet-api/internal/domain/repository"
	"github.com/drivelay/fleet-api/pkg/logger"
)

// EmployeeUseCase gestiona la plantilla de una empresa y sus invitaciones.
type EmployeeUseCase struct {
	employees   repository.EmployeeRepository
	invitations repository.InvitationRepository
	companies   repository.CompanyRepository
	users       repository.UserRepository
	access      *access.Resolver
	log         *logger.Logger
}

// NewEmployeeUseCase construye el caso de uso con sus puertos.
func NewEmployeeUseCase(
	employees repository.EmployeeRepository,
	invitations repository.InvitationRepository,
	companies repository.CompanyRepository,
	users repository.UserRepository,
	resolver *access.Resolver,
	log *logger.Logger,
) *EmployeeUseCase {
	return &EmployeeUseCase{
		employees:   employees,
		invitations: invitations,
		companies:   companies,
		users:       users,
		access:      resolver,
		log:         log,
	}
}

// List devuelve la plantilla efectiva. Fuente dual: las filas persistidas
// mandan; si no hay ninguna, se sintetiza una vista por cada miembro crudo
// a partir de su perfil (rol Miembro, el propietario como Administrador).
// La plantilla persistida es la fuente de verdad a futuro; las entradas
// solo-membresía son el caso de migración reconstruido en lectura.
func (uc *EmployeeUseCase) List(ctx context.Context, id entity.Identity, companyID string) ([]dto.EmployeeResponse, error) {
	if id.IsZero() {
		return nil, domain.ErrNotAuthenticated
	}
	rows, err := uc.employees.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("listar plantilla: %w", err)
	}
	if len(rows) > 0 {
		out := make([]dto.EmployeeResponse, 0, len(rows))
		for _, e := range rows {
			out = append(out, *toEmployeeResponse(e))
		}
		return out, nil
	}

	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("leer empresa: %w", err)
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	out := make([]dto.EmployeeResponse, 0, len(company.Members))
	for _, memberID := range company.Members {
		out = append(out, uc.synthesizeMember(ctx, company, memberID))
	}
	return out, nil
}

// synthesizeMember arma una fila de plantilla desde la membresía cruda. El
// perfil es un enriquecimiento de mejor esfuerzo: si falta, la fila sale
// con el id como único dato.
func (uc *EmployeeUseCase) synthesizeMember(ctx context.Context, company *entity.Company, memberID string) dto.EmployeeResponse {
	row := dto.EmployeeResponse{
		ID:        memberID,
		CompanyID: company.ID,
		Role:      entity.RoleMiembro,
		Active:    true,
	}
	if memberID == company.OwnerID {
		row.Role = entity.RoleAdministrador
	}
	user, err := uc.users.GetByID(ctx, memberID)
	if err != nil {
		uc.log.Warn().Err(err).Str("user_id", memberID).Msg("plantilla sintetizada sin perfil")
		return row
	}
	if user != nil {
		row.Name = user.FullName()
		if row.Name == "" {
			row.Name = user.Email
		}
		row.Email = user.Email
		row.CreatedAt = user.CreatedAt
	}
	return row
}

// Add crea una fila de plantilla. Solo roles elevados.
func (uc *EmployeeUseCase) Add(ctx context.Context, id entity.Identity, companyID string, in dto.AddEmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := uc.requireElevated(ctx, id, companyID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" && strings.TrimSpace(in.Email) == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleEmpleado
	}
	employee := &entity.Employee{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      strings.TrimSpace(in.Name),
		Role:      role,
		Active:    true,
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		CreatedAt: time.Now(),
	}
	if err := uc.employees.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("crear empleado: %w", err)
	}
	return toEmployeeResponse(employee), nil
}

// Update edita una fila de plantilla (promover/degradar Sub-administrador,
// activar/desactivar). Solo roles elevados.
func (uc *EmployeeUseCase) Update(ctx context.Context, id entity.Identity, companyID, employeeID string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := uc.requireElevated(ctx, id, companyID); err != nil {
		return nil, err
	}
	employee, err := uc.employees.GetByID(ctx, companyID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("leer empleado: %w", err)
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		employee.Name = in.Name
	}
	if in.Role != "" {
		employee.Role = in.Role
	}
	if in.Phone != "" {
		employee.Phone = in.Phone
	}
	if in.Active != nil {
		employee.Active = *in.Active
	}
	if err := uc.employees.Update(ctx, employee); err != nil {
		return nil, fmt.Errorf("actualizar empleado: %w", err)
	}
	return toEmployeeResponse(employee), nil
}

// Delete elimina una fila de plantilla. Solo roles elevados.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id entity.Identity, companyID, employeeID string) error {
	if err := uc.requireElevated(ctx, id, companyID); err != nil {
		return err
	}
	if err := uc.employees.Delete(ctx, companyID, employeeID); err != nil {
		return fmt.Errorf("borrar empleado: %w", err)
	}
	return nil
}

// Invite registra una invitación Pendiente por email. Solo roles elevados.
func (uc *EmployeeUseCase) Invite(ctx context.Context, id entity.Identity, companyID string, in dto.InviteRequest) (*dto.InvitationResponse, error) {
	if err := uc.requireElevated(ctx, id, companyID); err != nil {
		return nil, err
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleEmpleado
	}
	invitation := &entity.Invitation{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Email:     email,
		Role:      role,
		Status:    entity.InvitationPending,
		CreatedAt: time.Now(),
	}
	if err := uc.invitations.Create(ctx, invitation); err != nil {
		return nil, fmt.Errorf("crear invitación: %w", err)
	}
	return toInvitationResponse(invitation), nil
}

// ListInvitations lista las invitaciones de la empresa. Solo roles elevados.
func (uc *EmployeeUseCase) ListInvitations(ctx context.Context, id entity.Identity, companyID string) ([]dto.InvitationResponse, error) {
	if err := uc.requireElevated(ctx, id, companyID); err != nil {
		return nil, err
	}
	list, err := uc.invitations.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("listar invitaciones: %w", err)
	}
	out := make([]dto.InvitationResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, *toInvitationResponse(inv))
	}
	return out, nil
}

// CancelInvitation aplica la única transición válida: Pendiente → Cancelada.
// Cualquier otro estado destino se rechaza con ErrInvalidInput.
func (uc *EmployeeUseCase) CancelInvitation(ctx context.Context, id entity.Identity, companyID, invitationID, status string) error {
	if err := uc.requireElevated(ctx, id, companyID); err != nil {
		return err
	}
	if status != entity.InvitationCanceled {
		return domain.ErrInvalidInput
	}
	if err := uc.invitations.UpdateStatus(ctx, companyID, invitationID, status); err != nil {
		return fmt.Errorf("cancelar invitación: %w", err)
	}
	return nil
}

// DeleteInvitation borra una invitación. Solo roles elevados.
func (uc *EmployeeUseCase) DeleteInvitation(ctx context.Context, id entity.Identity, companyID, invitationID string) error {
	if err := uc.requireElevated(ctx, id, companyID); err != nil {
		return err
	}
	if err := uc.invitations.Delete(ctx, companyID, invitationID); err != nil {
		return fmt.Errorf("borrar invitación: %w", err)
	}
	return nil
}

func (uc *EmployeeUseCase) requireElevated(ctx context.Context, id entity.Identity, companyID string) error {
	role, err := uc.access.Role(ctx, companyID, id)
	if err != nil {
		return err
	}
	if !role.Elevated() {
		return domain.ErrForbidden
	}
	return nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:        e.ID,
		CompanyID: e.CompanyID,
		Name:      e.Name,
		Role:      e.Role,
		Active:    e.Active,
		Email:     e.Email,
		Phone:     e.Phone,
		CreatedAt: e.CreatedAt,
	}
}

func toInvitationResponse(i *entity.Invitation) *dto.InvitationResponse {
	if i == nil {
		return nil
	}
	return &dto.InvitationResponse{
		ID:        i.ID,
		CompanyID: i.CompanyID,
		Email:     i.Email,
		Role:      i.Role,
		Status:    i.Status,
		CreatedAt: i.CreatedAt,
	}
}
