package entity

import "time"

// UsageRecord es el registro inmutable de un ciclo retiro → devolución.
// Los campos de presentación (UserName, VehiclePlate, ...) son una copia
// desnormalizada de mejor esfuerzo tomada al escribir; pueden faltar.
type UsageRecord struct {
	ID           string
	VehicleID    string
	CompanyID    string
	UserID       string
	StartAt      time.Time
	StartKm      int
	EndAt        time.Time
	EndKm        int
	DurationMs   int64
	DistanceKm   int
	Notes        string
	UserName     string
	UserEmail    string
	VehiclePlate string
	VehicleName  string
}
