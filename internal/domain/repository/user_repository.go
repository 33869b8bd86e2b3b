package repository

import (
	"context"

	"github.com/drivelay/fleet-api/internal/domain/entity"
)

// ProfileUpdate campos editables del perfil. Un valor en blanco limpia el
// campo (equivale a borrarlo del documento).
type ProfileUpdate struct {
	Apodo          string
	FotoURL        string
	NumeroEmpleado string
	Telefono       string
}

// UserRepository define el puerto de persistencia para User (DIP).
// La implementación vive en infrastructure. Los Get* devuelven (nil, nil)
// cuando el recurso no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, p ProfileUpdate) error
	SetCurrentCompany(ctx context.Context, userID, companyID string) error
	SetPhotoURL(ctx context.Context, userID, url string) error
}
