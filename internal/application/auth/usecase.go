package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/drivelay/fleet-api/internal/application/dto"
	"github.com/drivelay/fleet-api/internal/domain"
	"github.com/drivelay/fleet-api/internal/domain/entity"
	"github.com/drivelay/fleet-api/internal/domain/repository"
	"github.com/drivelay/fleet-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso del proveedor de identidad: registro, login y
// perfil. El resto del core recibe la Identity ya resuelta.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea la contraseña con bcrypt y persiste un
// perfil mínimo. Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("verificar email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashear contraseña: %w", err)
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		Nombre:       strings.TrimSpace(in.Nombre),
		Apellido:     strings.TrimSpace(in.Apellido),
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("crear usuario: %w", err)
	}
	return toUserResponse(user), nil
}

// Login verifica email/contraseña y emite el JWT de identidad.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("emitir token: %w", err)
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Profile devuelve el perfil del actor.
func (uc *AuthUseCase) Profile(ctx context.Context, id entity.Identity) (*dto.UserResponse, error) {
	if id.IsZero() {
		return nil, domain.ErrNotAuthenticated
	}
	user, err := uc.users.GetByID(ctx, id.UID)
	if err != nil {
		return nil, fmt.Errorf("leer perfil: %w", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

// UpdateProfile edita apodo, foto, número de empleado y teléfono. Un campo
// en blanco se limpia (queda NULL), no se ignora.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, id entity.Identity, in dto.UpdateProfileRequest) error {
	if id.IsZero() {
		return domain.ErrNotAuthenticated
	}
	err := uc.users.UpdateProfile(ctx, id.UID, repository.ProfileUpdate{
		Apodo:          strings.TrimSpace(in.Apodo),
		FotoURL:        strings.TrimSpace(in.FotoURL),
		NumeroEmpleado: strings.TrimSpace(in.NumeroEmpleado),
		Telefono:       strings.TrimSpace(in.Telefono),
	})
	if err != nil {
		return fmt.Errorf("actualizar perfil: %w", err)
	}
	return nil
}

// SetPhoto persiste la URL de la foto de perfil ya subida al blob store.
func (uc *AuthUseCase) SetPhoto(ctx context.Context, id entity.Identity, url string) error {
	if id.IsZero() {
		return domain.ErrNotAuthenticated
	}
	if err := uc.users.SetPhotoURL(ctx, id.UID, url); err != nil {
		return fmt.Errorf("actualizar foto: %w", err)
	}
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:               u.ID,
		Email:            u.Email,
		Nombre:           u.Nombre,
		Apellido:         u.Apellido,
		Apodo:            u.Apodo,
		FotoURL:          u.FotoURL,
		NumeroEmpleado:   u.NumeroEmpleado,
		Telefono:         u.Telefono,
		CurrentCompanyID: u.CurrentCompanyID,
		CreatedAt:        u.CreatedAt,
	}
}
