package postgres

import (
	"context"
	"fmt"

	"github.com/drivelay/fleet-api/internal/domain/entity"
	"github.com/drivelay/fleet-api/internal/domain/repository"
)

// Asegura que UserRepo implementa repository.UserRepository.
var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db DB
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db DB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, email, nombre, apellido, apodo, foto_url, numero_empleado, telefono, password_hash, current_company_id, created_at`

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		u.ID, u.Email, u.Nombre, u.Apellido, u.Apodo, u.FotoURL,
		u.NumeroEmpleado, u.Telefono, u.PasswordHash, u.CurrentCompanyID, u.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByEmail obtiene un usuario por email. (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanOne(ctx, query, email)
}

// UpdateProfile escribe los campos editables del perfil. Un valor en blanco
// limpia el campo (se persiste vacío, el análogo del marcador de borrado).
func (r *UserRepo) UpdateProfile(ctx context.Context, userID string, p repository.ProfileUpdate) error {
	query := `
		UPDATE users SET apodo = $2, foto_url = $3, numero_empleado = $4, telefono = $5
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query, userID, p.Apodo, p.FotoURL, p.NumeroEmpleado, p.Telefono)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// SetCurrentCompany fija la empresa activa en el perfil.
func (r *UserRepo) SetCurrentCompany(ctx context.Context, userID, companyID string) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET current_company_id = $2 WHERE id = $1`, userID, companyID)
	if err != nil {
		return fmt.Errorf("set current company: %w", err)
	}
	return nil
}

// SetPhotoURL persiste la URL de la foto de perfil.
func (r *UserRepo) SetPhotoURL(ctx context.Context, userID, url string) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET foto_url = $2 WHERE id = $1`, userID, url)
	if err != nil {
		return fmt.Errorf("set photo url: %w", err)
	}
	return nil
}

func (r *UserRepo) scanOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.Nombre, &u.Apellido, &u.Apodo, &u.FotoURL,
		&u.NumeroEmpleado, &u.Telefono, &u.PasswordHash, &u.CurrentCompanyID, &u.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
