package entity

import "time"

// Tipos de evento del feed de notificaciones de una empresa.
const (
	NotifEmployeeJoin  = "employee_join"
	NotifVehicleStart  = "vehicle_start"
	NotifVehicleFinish = "vehicle_finish"
	NotifHelpRequest   = "help_request"
)

// Notification es una entrada append-only del feed de actividad de la
// empresa. Nunca se muta ni se borra por flujo normal.
type Notification struct {
	ID           string
	CompanyID    string
	Type         string
	Timestamp    time.Time
	UserID       string
	VehicleID    string
	Message      string
	UserName     string
	UserEmail    string
	VehiclePlate string
	VehicleName  string
	DurationMs   *int64
	DistanceKm   *int
}
