package usecase_test

import (
	"context"
	"sort"
	"time"

	"github.com/drivelay/fleet-api/internal/application/access"
	"github.com/drivelay/fleet-api/internal/application/notify"
	"github.com/drivelay/fleet-api/internal/domain/entity"
	"github.com/drivelay/fleet-api/internal/domain/repository"
	"github.com/drivelay/fleet-api/internal/infrastructure/observability"
	"github.com/drivelay/fleet-api/pkg/logger"
)

// Fakes en memoria que emulan la semántica del almacén real (miembros como
// conjunto, Get* con (nil, nil) cuando no existe). Compartidos por los tests
// de casos de uso del paquete.

type memCompanyRepo struct {
	companies map[string]*entity.Company
	order     []string
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{companies: map[string]*entity.Company{}}
}

func (m *memCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	cp := *c
	m.companies[c.ID] = &cp
	m.order = append(m.order, c.ID)
	return nil
}

func (m *memCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	if c, ok := m.companies[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (m *memCompanyRepo) GetByCode(_ context.Context, code string) (*entity.Company, error) {
	for _, id := range m.order {
		if m.companies[id].Code == code {
			cp := *m.companies[id]
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memCompanyRepo) AddMember(_ context.Context, companyID, userID string) error {
	c := m.companies[companyID]
	if c == nil {
		return nil
	}
	if !c.HasMember(userID) {
		c.Members = append(c.Members, userID)
	}
	return nil
}

func (m *memCompanyRepo) FirstByMember(_ context.Context, userID string) (*entity.Company, error) {
	for _, id := range m.order {
		if m.companies[id].HasMember(userID) {
			cp := *m.companies[id]
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memCompanyRepo) FirstByOwner(_ context.Context, userID string) (*entity.Company, error) {
	for _, id := range m.order {
		if m.companies[id].OwnerID == userID {
			cp := *m.companies[id]
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memCompanyRepo) ListByUser(_ context.Context, userID string) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, id := range m.order {
		c := m.companies[id]
		if c.HasMember(userID) || c.OwnerID == userID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memCompanyRepo) Update(_ context.Context, c *entity.Company) error {
	cp := *c
	m.companies[c.ID] = &cp
	return nil
}

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (m *memUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) UpdateProfile(_ context.Context, userID string, p repository.ProfileUpdate) error {
	if u, ok := m.users[userID]; ok {
		u.Apodo, u.FotoURL, u.NumeroEmpleado, u.Telefono = p.Apodo, p.FotoURL, p.NumeroEmpleado, p.Telefono
	}
	return nil
}

func (m *memUserRepo) SetCurrentCompany(_ context.Context, userID, companyID string) error {
	if u, ok := m.users[userID]; ok {
		u.CurrentCompanyID = companyID
	} else {
		m.users[userID] = &entity.User{ID: userID, CurrentCompanyID: companyID}
	}
	return nil
}

func (m *memUserRepo) SetPhotoURL(_ context.Context, userID, url string) error {
	if u, ok := m.users[userID]; ok {
		u.FotoURL = url
	}
	return nil
}

type memEmployeeRepo struct {
	rows map[string]*entity.Employee
}

func newMemEmployeeRepo() *memEmployeeRepo {
	return &memEmployeeRepo{rows: map[string]*entity.Employee{}}
}

func (m *memEmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	cp := *e
	m.rows[e.CompanyID+"/"+e.ID] = &cp
	return nil
}

func (m *memEmployeeRepo) GetByID(_ context.Context, companyID, employeeID string) (*entity.Employee, error) {
	if e, ok := m.rows[companyID+"/"+employeeID]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func (m *memEmployeeRepo) FindForUser(_ context.Context, companyID, userID, email string) (*entity.Employee, error) {
	for _, e := range m.rows {
		if e.CompanyID != companyID {
			continue
		}
		if e.ID == userID || (email != "" && e.Email == email) {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memEmployeeRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range m.rows {
		if e.CompanyID == companyID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memEmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	cp := *e
	m.rows[e.CompanyID+"/"+e.ID] = &cp
	return nil
}

func (m *memEmployeeRepo) Delete(_ context.Context, companyID, employeeID string) error {
	delete(m.rows, companyID+"/"+employeeID)
	return nil
}

type memInvitationRepo struct {
	rows map[string]*entity.Invitation
}

func newMemInvitationRepo() *memInvitationRepo {
	return &memInvitationRepo{rows: map[string]*entity.Invitation{}}
}

func (m *memInvitationRepo) Create(_ context.Context, i *entity.Invitation) error {
	cp := *i
	m.rows[i.CompanyID+"/"+i.ID] = &cp
	return nil
}

func (m *memInvitationRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Invitation, error) {
	var out []*entity.Invitation
	for _, i := range m.rows {
		if i.CompanyID == companyID {
			cp := *i
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memInvitationRepo) UpdateStatus(_ context.Context, companyID, invitationID, status string) error {
	if i, ok := m.rows[companyID+"/"+invitationID]; ok {
		i.Status = status
	}
	return nil
}

func (m *memInvitationRepo) Delete(_ context.Context, companyID, invitationID string) error {
	delete(m.rows, companyID+"/"+invitationID)
	return nil
}

// memVehicleRepo cuenta las escrituras para poder afirmar que un rechazo por
// permisos no tocó el almacén.
type memVehicleRepo struct {
	repository.VehicleRepository
	rows   map[string]*entity.Vehicle
	writes int
}

func newMemVehicleRepo() *memVehicleRepo {
	return &memVehicleRepo{rows: map[string]*entity.Vehicle{}}
}

func (m *memVehicleRepo) Create(_ context.Context, v *entity.Vehicle) error {
	m.writes++
	cp := *v
	m.rows[v.CompanyID+"/"+v.ID] = &cp
	return nil
}

func (m *memVehicleRepo) GetByID(_ context.Context, companyID, vehicleID string) (*entity.Vehicle, error) {
	if v, ok := m.rows[companyID+"/"+vehicleID]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, nil
}

func (m *memVehicleRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Vehicle, error) {
	var out []*entity.Vehicle
	for _, v := range m.rows {
		if v.CompanyID == companyID {
			cp := *v
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memVehicleRepo) Update(_ context.Context, v *entity.Vehicle) error {
	m.writes++
	cp := *v
	m.rows[v.CompanyID+"/"+v.ID] = &cp
	return nil
}

func (m *memVehicleRepo) Delete(_ context.Context, companyID, vehicleID string) error {
	m.writes++
	delete(m.rows, companyID+"/"+vehicleID)
	return nil
}

func (m *memVehicleRepo) Checkout(_ context.Context, companyID, vehicleID, userID string, at time.Time, startKm int) (bool, error) {
	v, ok := m.rows[companyID+"/"+vehicleID]
	if !ok || v.Status != entity.VehicleActive {
		return false, nil
	}
	v.Status = entity.VehicleInUse
	v.AssignedTo = &userID
	v.AssignedAt = &at
	v.StartKm = &startKm
	return true, nil
}

func (m *memVehicleRepo) ClearAssignment(_ context.Context, companyID, vehicleID string) error {
	if v, ok := m.rows[companyID+"/"+vehicleID]; ok {
		v.Status = entity.VehicleActive
		v.AssignedTo, v.AssignedAt, v.StartKm = nil, nil, nil
	}
	return nil
}

type memUsageRepo struct {
	rows []*entity.UsageRecord
}

func (m *memUsageRepo) Create(_ context.Context, u *entity.UsageRecord) error {
	cp := *u
	m.rows = append(m.rows, &cp)
	return nil
}

func (m *memUsageRepo) ListByCompanyOrdered(_ context.Context, companyID string) ([]*entity.UsageRecord, error) {
	var out []*entity.UsageRecord
	for _, u := range m.rows {
		if u.CompanyID == companyID {
			cp := *u
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].EndAt.After(out[j].EndAt) })
	return out, nil
}

func (m *memUsageRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.UsageRecord, error) {
	return m.ListByCompanyOrdered(ctx, companyID)
}

type memAlertRepo struct {
	rows []*entity.AccidentAlert
}

func (m *memAlertRepo) Create(_ context.Context, a *entity.AccidentAlert) error {
	cp := *a
	m.rows = append(m.rows, &cp)
	return nil
}

func (m *memAlertRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.AccidentAlert, error) {
	var out []*entity.AccidentAlert
	for _, a := range m.rows {
		if a.CompanyID == companyID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memNotificationRepo struct {
	created []*entity.Notification
}

func (m *memNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	m.created = append(m.created, n)
	return nil
}

func (m *memNotificationRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range m.created {
		if n.CompanyID == companyID {
			out = append(out, n)
		}
	}
	return out, nil
}

// testEnv cablea los fakes igual que main: mismo grafo, almacenes en memoria.
type testEnv struct {
	companies *memCompanyRepo
	users     *memUserRepo
	employees *memEmployeeRepo
	invites   *memInvitationRepo
	vehicles  *memVehicleRepo
	usages    *memUsageRepo
	alerts    *memAlertRepo
	notifs    *memNotificationRepo
	resolver  *access.Resolver
	notifier  *notify.Notifier
	metrics   *observability.Metrics
}

func newTestEnv() *testEnv {
	env := &testEnv{
		companies: newMemCompanyRepo(),
		users:     newMemUserRepo(),
		employees: newMemEmployeeRepo(),
		invites:   newMemInvitationRepo(),
		vehicles:  newMemVehicleRepo(),
		usages:    &memUsageRepo{},
		alerts:    &memAlertRepo{},
		notifs:    &memNotificationRepo{},
		metrics:   observability.NewMetrics(),
	}
	env.resolver = access.NewResolver(env.companies, env.employees)
	env.notifier = notify.NewNotifier(env.notifs, env.users, env.vehicles, env.metrics, logger.Nop())
	return env
}
