package postgres

import (
	"context"
	"fmt"

	"github.com/drivelay/fleet-api/internal/domain/entity"
	"github.com/drivelay/fleet-api/internal/domain/repository"
)

// Asegura que EmployeeRepo implementa repository.EmployeeRepository.
var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	db DB
}

// NewEmployeeRepository construye el adaptador de persistencia de plantilla.
func NewEmployeeRepository(db DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

const employeeColumns = `id, company_id, name, role, active, email, phone, created_at`

// Create persiste una fila de plantilla.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.CompanyID, e.Name, e.Role, e.Active, e.Email, e.Phone, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene una fila de plantilla. (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, companyID, employeeID string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE company_id = $1 AND id = $2`
	return r.scanOne(ctx, query, companyID, employeeID)
}

// FindForUser busca la fila del actor por id de usuario o por email (el email
// vacío no matchea nada).
func (r *EmployeeRepo) FindForUser(ctx context.Context, companyID, userID, email string) (*entity.Employee, error) {
	query := `
		SELECT ` + employeeColumns + ` FROM employees
		WHERE company_id = $1 AND (id = $2 OR (email = $3 AND $3 <> ''))
		LIMIT 1`
	return r.scanOne(ctx, query, companyID, userID, email)
}

// ListByCompany devuelve la plantilla persistida de una empresa.
func (r *EmployeeRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE company_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.Name, &e.Role, &e.Active, &e.Email, &e.Phone, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza una fila de plantilla.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employees SET name = $3, role = $4, active = $5, email = $6, phone = $7
		WHERE company_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, e.CompanyID, e.ID, e.Name, e.Role, e.Active, e.Email, e.Phone)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete elimina una fila de plantilla.
func (r *EmployeeRepo) Delete(ctx context.Context, companyID, employeeID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM employees WHERE company_id = $1 AND id = $2`, companyID, employeeID)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Employee, error) {
	var e entity.Employee
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&e.ID, &e.CompanyID, &e.Name, &e.Role, &e.Active, &e.Email, &e.Phone, &e.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}
