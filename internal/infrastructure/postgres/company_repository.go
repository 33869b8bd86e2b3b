package postgres

import (
	"context"
	"fmt"

	"github.com/drivelay/fleet-api/internal/domain/entity"
	"github.com/drivelay/fleet-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
// members es un text[]: la unión de conjunto se resuelve en la misma
// sentencia (el análogo del array-union atómico del almacén original).
type CompanyRepo struct {
	db DB
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db DB) *CompanyRepo {
	return &CompanyRepo{db: db}
}

const companyColumns = `id, name, code, owner_id, members, logo_url, employees_estimate, vehicles_estimate, created_at`

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.Code, c.OwnerID, c.Members, c.LogoURL,
		c.EmployeesEstimate, c.VehiclesEstimate, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID. (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByCode obtiene una empresa por código exacto. (nil, nil) si no existe.
func (r *CompanyRepo) GetByCode(ctx context.Context, code string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE code = $1`
	return r.scanOne(ctx, query, code)
}

// AddMember agrega el usuario a members solo si aún no figura: unirse dos
// veces deja exactamente una ocurrencia.
func (r *CompanyRepo) AddMember(ctx context.Context, companyID, userID string) error {
	query := `
		UPDATE companies SET members = array_append(members, $2)
		WHERE id = $1 AND NOT ($2 = ANY(members))`
	if _, err := r.db.Exec(ctx, query, companyID, userID); err != nil {
		return fmt.Errorf("add member: %w", err)
	}
	return nil
}

// FirstByMember devuelve la primera empresa donde el usuario es miembro.
func (r *CompanyRepo) FirstByMember(ctx context.Context, userID string) (*entity.Company, error) {
	query := `
		SELECT ` + companyColumns + ` FROM companies
		WHERE $1 = ANY(members) ORDER BY created_at LIMIT 1`
	return r.scanOne(ctx, query, userID)
}

// FirstByOwner devuelve la primera empresa donde el usuario es propietario.
func (r *CompanyRepo) FirstByOwner(ctx context.Context, userID string) (*entity.Company, error) {
	query := `
		SELECT ` + companyColumns + ` FROM companies
		WHERE owner_id = $1 ORDER BY created_at LIMIT 1`
	return r.scanOne(ctx, query, userID)
}

// ListByUser une membresía y propiedad sin duplicados.
func (r *CompanyRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Company, error) {
	query := `
		SELECT ` + companyColumns + ` FROM companies
		WHERE $1 = ANY(members) OR owner_id = $1
		ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Code, &c.OwnerID, &c.Members, &c.LogoURL,
			&c.EmployeesEstimate, &c.VehiclesEstimate, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza nombre, logo y estimaciones de una empresa.
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, logo_url = $3, employees_estimate = $4, vehicles_estimate = $5
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query, c.ID, c.Name, c.LogoURL, c.EmployeesEstimate, c.VehiclesEstimate)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

func (r *CompanyRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Company, error) {
	var c entity.Company
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.Name, &c.Code, &c.OwnerID, &c.Members, &c.LogoURL,
		&c.EmployeesEstimate, &c.VehiclesEstimate, &c.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}
