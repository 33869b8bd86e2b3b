package entity

import "time"

// AlertOpen estado inicial (y único gestionado aquí) de una alerta.
const AlertOpen = "open"

// AccidentAlert es el registro de un reporte de accidente o solicitud de
// ayuda sobre un vehículo. Independiente del ciclo retiro/devolución.
type AccidentAlert struct {
	ID        string
	CompanyID string
	VehicleID string
	UserID    string
	Timestamp time.Time
	Status    string
	Message   string
}
