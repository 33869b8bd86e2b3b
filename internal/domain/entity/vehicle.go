package entity

import "time"

// Estados operativos de un vehículo. Activo ↔ En Uso los gobierna el ciclo
// retiro/devolución; Mantenimiento e Inactivo solo se alcanzan por edición
// directa de un rol elevado.
const (
	VehicleActive      = "Activo"
	VehicleInUse       = "En Uso"
	VehicleMaintenance = "Mantenimiento"
	VehicleInactive    = "Inactivo"
)

// Vehicle representa un vehículo de la flota de una empresa.
// Invariante: AssignedTo, AssignedAt y StartKm están los tres presentes o
// los tres ausentes, y presentes exactamente cuando Status == "En Uso".
type Vehicle struct {
	ID          string
	CompanyID   string
	Name        string
	Plate       string
	Status      string
	Description string
	AssignedTo  *string
	AssignedAt  *time.Time
	StartKm     *int
	LastAlertAt *time.Time
	CreatedAt   time.Time
}

// InUse informa si el vehículo está retirado (la asignación es la fuente de
// verdad de "en uso", no la existencia de registros en el historial).
func (v *Vehicle) InUse() bool {
	return v.AssignedAt != nil
}
