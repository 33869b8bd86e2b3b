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
)

// VehicleUseCase CRUD del registro de vehículos. Escritura con permiso
// elevado, lectura abierta a cualquier miembro autenticado: la asimetría
// es intencional.
type VehicleUseCase struct {
	vehicles repository.VehicleRepository
	access   *access.Resolver
}

// NewVehicleUseCase construye el caso de uso con sus puertos.
func NewVehicleUseCase(vehicles repository.VehicleRepository, resolver *access.Resolver) *VehicleUseCase {
	return &VehicleUseCase{vehicles: vehicles, access: resolver}
}

// Add crea un vehículo. El chequeo de permiso se resuelve antes de tocar el
// almacén: un actor sin rol elevado recibe ErrForbidden y no se escribe nada.
func (uc *VehicleUseCase) Add(ctx context.Context, id entity.Identity, companyID string, in dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	if err := uc.requirePermission(ctx, id, companyID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Plate) == "" {
		return nil, domain.ErrInvalidInput
	}
	vehicle := &entity.Vehicle{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        strings.TrimSpace(in.Name),
		Plate:       strings.TrimSpace(in.Plate),
		Status:      entity.VehicleActive,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   time.Now(),
	}
	if err := uc.vehicles.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("crear vehículo: %w", err)
	}
	return toVehicleResponse(vehicle), nil
}

// Update edita nombre, placa, descripción y los estados administrativos
// (Mantenimiento/Inactivo). No toca la terna de asignación: esa pertenece
// al ciclo retiro/devolución.
func (uc *VehicleUseCase) Update(ctx context.Context, id entity.Identity, companyID, vehicleID string, in dto.UpdateVehicleRequest) (*dto.VehicleResponse, error) {
	if err := uc.requirePermission(ctx, id, companyID); err != nil {
		return nil, err
	}
	vehicle, err := uc.vehicles.GetByID(ctx, companyID, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("leer vehículo: %w", err)
	}
	if vehicle == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		vehicle.Name = in.Name
	}
	if in.Plate != "" {
		vehicle.Plate = in.Plate
	}
	if in.Description != "" {
		vehicle.Description = in.Description
	}
	if in.Status != "" {
		if !validAdminStatus(in.Status) {
			return nil, domain.ErrInvalidInput
		}
		vehicle.Status = in.Status
	}
	if err := uc.vehicles.Update(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("actualizar vehículo: %w", err)
	}
	return toVehicleResponse(vehicle), nil
}

// Delete borra un vehículo. Solo roles elevados.
func (uc *VehicleUseCase) Delete(ctx context.Context, id entity.Identity, companyID, vehicleID string) error {
	if err := uc.requirePermission(ctx, id, companyID); err != nil {
		return err
	}
	if err := uc.vehicles.Delete(ctx, companyID, vehicleID); err != nil {
		return fmt.Errorf("borrar vehículo: %w", err)
	}
	return nil
}

// Get devuelve un vehículo. Sin permiso de rol: lectura abierta a miembros.
func (uc *VehicleUseCase) Get(ctx context.Context, companyID, vehicleID string) (*dto.VehicleResponse, error) {
	vehicle, err := uc.vehicles.GetByID(ctx, companyID, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("leer vehículo: %w", err)
	}
	if vehicle == nil {
		return nil, domain.ErrNotFound
	}
	return toVehicleResponse(vehicle), nil
}

// List devuelve la flota de la empresa. Lectura abierta a miembros.
func (uc *VehicleUseCase) List(ctx context.Context, companyID string) ([]dto.VehicleResponse, error) {
	list, err := uc.vehicles.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("listar vehículos: %w", err)
	}
	out := make([]dto.VehicleResponse, 0, len(list))
	for _, v := range list {
		out = append(out, *toVehicleResponse(v))
	}
	return out, nil
}

func (uc *VehicleUseCase) requirePermission(ctx context.Context, id entity.Identity, companyID string) error {
	allowed, err := uc.access.CanManageVehicles(ctx, companyID, id)
	if err != nil {
		return err
	}
	if !allowed {
		return domain.ErrForbidden
	}
	return nil
}

// validAdminStatus acepta los estados alcanzables por edición directa.
// "En Uso" queda fuera: solo lo fija el ciclo retiro/devolución.
func validAdminStatus(status string) bool {
	switch status {
	case entity.VehicleActive, entity.VehicleMaintenance, entity.VehicleInactive:
		return true
	default:
		return false
	}
}

func toVehicleResponse(v *entity.Vehicle) *dto.VehicleResponse {
	if v == nil {
		return nil
	}
	return &dto.VehicleResponse{
		ID:          v.ID,
		CompanyID:   v.CompanyID,
		Name:        v.Name,
		Plate:       v.Plate,
		Status:      v.Status,
		Description: v.Description,
		AssignedTo:  v.AssignedTo,
		AssignedAt:  v.AssignedAt,
		StartKm:     v.StartKm,
		LastAlertAt: v.LastAlertAt,
		CreatedAt:   v.CreatedAt,
	}
}
