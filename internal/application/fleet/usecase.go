package fleet

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/drivelay/fleet-api/internal/application/dto"
	"github.com/drivelay/fleet-api/internal/application/notify"
	"github.com/drivelay/fleet-api/internal/domain"
	"github.com/drivelay/fleet-api/internal/domain/entity"
	"github.com/drivelay/fleet-api/internal/domain/repository"
	"github.com/drivelay/fleet-api/internal/infrastructure/observability"
	"github.com/drivelay/fleet-api/pkg/logger"
)

// UseCase gobierna el ciclo de vida operativo de un vehículo:
// Activo → En Uso (retiro) → Activo (devolución), el libro de usos que
// produce cada ciclo, y las alertas de accidente.
type UseCase struct {
	vehicles repository.VehicleRepository
	usages   repository.UsageRepository
	alerts   repository.AlertRepository
	users    repository.UserRepository
	notifier *notify.Notifier
	metrics  *observability.Metrics
	log      *logger.Logger

	now func() time.Time
}

// NewUseCase construye el caso de uso del ciclo retiro/devolución.
func NewUseCase(
	vehicles repository.VehicleRepository,
	usages repository.UsageRepository,
	alerts repository.AlertRepository,
	users repository.UserRepository,
	notifier *notify.Notifier,
	metrics *observability.Metrics,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		vehicles: vehicles,
		usages:   usages,
		alerts:   alerts,
		users:    users,
		notifier: notifier,
		metrics:  metrics,
		log:      log,
		now:      time.Now,
	}
}

// Start retira un vehículo: lo pasa a "En Uso" asignándolo al actor con
// kilometraje inicial. La precondición status == "Activo" se verifica en la
// misma escritura (compare-and-swap): un segundo retiro concurrente no
// pisa al primero, recibe ErrVehicleNotAvailable.
func (uc *UseCase) Start(ctx context.Context, id entity.Identity, companyID, vehicleID string, in dto.StartUsageRequest) (*dto.VehicleResponse, error) {
	if id.IsZero() {
		return nil, domain.ErrNotAuthenticated
	}
	if in.StartKm < 0 {
		return nil, domain.ErrInvalidInput
	}
	vehicle, err := uc.vehicles.GetByID(ctx, companyID, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("leer vehículo: %w", err)
	}
	if vehicle == nil {
		return nil, domain.ErrNotFound
	}

	startedAt := uc.now()
	ok, err := uc.vehicles.Checkout(ctx, companyID, vehicleID, id.UID, startedAt, in.StartKm)
	if err != nil {
		return nil, fmt.Errorf("retirar vehículo: %w", err)
	}
	if !ok {
		return nil, domain.ErrVehicleNotAvailable
	}
	uc.metrics.IncCheckout()

	uc.notifier.Publish(ctx, companyID, id, notify.Event{
		Type:      entity.NotifVehicleStart,
		VehicleID: vehicleID,
		Message:   "Empleado retiró un vehículo",
	})

	vehicle.Status = entity.VehicleInUse
	vehicle.AssignedTo = &id.UID
	vehicle.AssignedAt = &startedAt
	vehicle.StartKm = &in.StartKm
	return toVehicleResponse(vehicle), nil
}

// Finish devuelve un vehículo: escribe el registro de uso inmutable y luego
// limpia la asignación volviendo a "Activo". Son dos escrituras
// independientes; ante un corte entre ambas, la asignación del vehículo
// sigue siendo la fuente de verdad de "en uso", no el libro de usos.
//
// Si falta la terna de asignación (devolución sin retiro previo) se usa
// ahora/endKm como inicio, lo que produce un registro de duración y
// distancia cero en lugar de fallar.
func (uc *UseCase) Finish(ctx context.Context, id entity.Identity, companyID, vehicleID string, in dto.FinishUsageRequest) (*dto.UsageRecordResponse, error) {
	if id.IsZero() {
		return nil, domain.ErrNotAuthenticated
	}
	vehicle, err := uc.vehicles.GetByID(ctx, companyID, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("leer vehículo: %w", err)
	}
	if vehicle == nil {
		return nil, domain.ErrNotFound
	}

	endAt := uc.now()
	startAt := endAt
	if vehicle.AssignedAt != nil {
		startAt = *vehicle.AssignedAt
	}
	startKm := in.EndKm
	if vehicle.StartKm != nil {
		startKm = *vehicle.StartKm
	}
	distance := in.EndKm - startKm
	if distance < 0 {
		// Odómetro retrocedido o dato mal cargado: se recorta a cero,
		// nunca es un error.
		distance = 0
	}

	record := &entity.UsageRecord{
		ID:           uuid.New().String(),
		VehicleID:    vehicleID,
		CompanyID:    companyID,
		UserID:       id.UID,
		StartAt:      startAt,
		StartKm:      startKm,
		EndAt:        endAt,
		EndKm:        in.EndKm,
		DurationMs:   endAt.Sub(startAt).Milliseconds(),
		DistanceKm:   distance,
		Notes:        in.Notes,
		VehiclePlate: vehicle.Plate,
		VehicleName:  vehicle.Name,
	}
	// Copia desnormalizada del actor, de mejor esfuerzo: su ausencia no
	// frena la escritura del registro.
	if user, err := uc.users.GetByID(ctx, id.UID); err != nil {
		uc.log.Warn().Err(err).Str("user_id", id.UID).Msg("registro de uso sin datos de usuario")
	} else if user != nil {
		record.UserName = user.FullName()
		record.UserEmail = user.Email
	}

	if err := uc.usages.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("registrar uso: %w", err)
	}
	if err := uc.vehicles.ClearAssignment(ctx, companyID, vehicleID); err != nil {
		return nil, fmt.Errorf("limpiar asignación: %w", err)
	}
	uc.metrics.IncReturn()

	uc.notifier.Publish(ctx, companyID, id, notify.Event{
		Type:       entity.NotifVehicleFinish,
		VehicleID:  vehicleID,
		Message:    "Empleado devolvió un vehículo",
		DurationMs: &record.DurationMs,
		DistanceKm: &record.DistanceKm,
	})
	return toUsageResponse(record), nil
}

// ReportAccident registra una alerta de accidente, sella last_alert_at en el
// vehículo y publica help_request. No altera el estado operativo y se admite
// en cualquier estado.
func (uc *UseCase) ReportAccident(ctx context.Context, id entity.Identity, companyID, vehicleID string, in dto.ReportAlertRequest) (*dto.AlertResponse, error) {
	if id.IsZero() {
		return nil, domain.ErrNotAuthenticated
	}
	vehicle, err := uc.vehicles.GetByID(ctx, companyID, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("leer vehículo: %w", err)
	}
	if vehicle == nil {
		return nil, domain.ErrNotFound
	}

	alert := &entity.AccidentAlert{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		VehicleID: vehicleID,
		UserID:    id.UID,
		Timestamp: uc.now(),
		Status:    entity.AlertOpen,
		Message:   in.Message,
	}
	if err := uc.alerts.Create(ctx, alert); err != nil {
		return nil, fmt.Errorf("crear alerta: %w", err)
	}
	if err := uc.vehicles.MarkAlert(ctx, companyID, vehicleID, alert.Timestamp); err != nil {
		// La alerta ya quedó registrada; el sello en el vehículo es
		// secundario y su fallo no la invalida.
		uc.log.Warn().Err(err).Str("vehicle_id", vehicleID).Msg("no se pudo sellar last_alert_at")
	}
	uc.metrics.IncAlert()

	message := in.Message
	if message == "" {
		message = "Solicitud de ayuda"
	}
	uc.notifier.Publish(ctx, companyID, id, notify.Event{
		Type:      entity.NotifHelpRequest,
		VehicleID: vehicleID,
		Message:   message,
	})
	return toAlertResponse(alert), nil
}

// History devuelve el historial de usos de toda la empresa, más reciente
// primero. Ruta primaria: orden en el almacén (requiere índice compuesto).
// Ante cualquier fallo se reintenta sin orden y se ordena en memoria, con
// los registros sin fecha de fin al final. El respaldo es una red de
// seguridad de corrección, no código muerto: el índice puede no existir en
// un almacén recién aprovisionado.
func (uc *UseCase) History(ctx context.Context, id entity.Identity, companyID string) ([]dto.UsageRecordResponse, error) {
	if id.IsZero() {
		return nil, domain.ErrNotAuthenticated
	}
	records, err := uc.usages.ListByCompanyOrdered(ctx, companyID)
	if err != nil {
		uc.log.Warn().Err(err).Str("company_id", companyID).Msg("historial ordenado falló, usando respaldo")
		records, err = uc.usages.ListByCompany(ctx, companyID)
		if err != nil {
			return nil, fmt.Errorf("historial de usos: %w", err)
		}
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].EndAt.After(records[j].EndAt)
		})
	}
	out := make([]dto.UsageRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, *toUsageResponse(r))
	}
	return out, nil
}

// Alerts lista las alertas de accidente de la empresa.
func (uc *UseCase) Alerts(ctx context.Context, id entity.Identity, companyID string) ([]dto.AlertResponse, error) {
	if id.IsZero() {
		return nil, domain.ErrNotAuthenticated
	}
	list, err := uc.alerts.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("listar alertas: %w", err)
	}
	out := make([]dto.AlertResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *toAlertResponse(a))
	}
	return out, nil
}

func toVehicleResponse(v *entity.Vehicle) *dto.VehicleResponse {
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

func toUsageResponse(r *entity.UsageRecord) *dto.UsageRecordResponse {
	return &dto.UsageRecordResponse{
		ID:           r.ID,
		VehicleID:    r.VehicleID,
		CompanyID:    r.CompanyID,
		UserID:       r.UserID,
		StartAt:      r.StartAt,
		StartKm:      r.StartKm,
		EndAt:        r.EndAt,
		EndKm:        r.EndKm,
		DurationMs:   r.DurationMs,
		DistanceKm:   r.DistanceKm,
		Notes:        r.Notes,
		UserName:     r.UserName,
		UserEmail:    r.UserEmail,
		VehiclePlate: r.VehiclePlate,
		VehicleName:  r.VehicleName,
	}
}

func toAlertResponse(a *entity.AccidentAlert) *dto.AlertResponse {
	return &dto.AlertResponse{
		ID:        a.ID,
		CompanyID: a.CompanyID,
		VehicleID: a.VehicleID,
		UserID:    a.UserID,
		Timestamp: a.Timestamp,
		Status:    a.Status,
		Message:   a.Message,
	}
}
