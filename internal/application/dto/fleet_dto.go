package dto

import "time"

// StartUsageRequest retiro de un vehículo.
type StartUsageRequest struct {
	StartKm int `json:"startKm"`
}

// FinishUsageRequest devolución de un vehículo.
type FinishUsageRequest struct {
	EndKm int    `json:"endKm"`
	Notes string `json:"notes"`
}

// ReportAlertRequest reporte de accidente / solicitud de ayuda.
type ReportAlertRequest struct {
	Message string `json:"message"`
}

// UsageRecordResponse un ciclo retiro → devolución ya cerrado.
type UsageRecordResponse struct {
	ID           string    `json:"id"`
	VehicleID    string    `json:"vehicleId"`
	CompanyID    string    `json:"companyId"`
	UserID       string    `json:"userId"`
	StartAt      time.Time `json:"startAt"`
	StartKm      int       `json:"startKm"`
	EndAt        time.Time `json:"endAt"`
	EndKm        int       `json:"endKm"`
	DurationMs   int64     `json:"durationMs"`
	DistanceKm   int       `json:"distanceKm"`
	Notes        string    `json:"notes,omitempty"`
	UserName     string    `json:"userName,omitempty"`
	UserEmail    string    `json:"userEmail,omitempty"`
	VehiclePlate string    `json:"vehiclePlate,omitempty"`
	VehicleName  string    `json:"vehicleName,omitempty"`
}

// NotificationResponse entrada del feed de actividad.
type NotificationResponse struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"companyId"`
	Type         string    `json:"type"`
	Timestamp    time.Time `json:"timestamp"`
	UserID       string    `json:"userId"`
	VehicleID    string    `json:"vehicleId,omitempty"`
	Message      string    `json:"message,omitempty"`
	UserName     string    `json:"userName,omitempty"`
	UserEmail    string    `json:"userEmail,omitempty"`
	VehiclePlate string    `json:"vehiclePlate,omitempty"`
	VehicleName  string    `json:"vehicleName,omitempty"`
	DurationMs   *int64    `json:"durationMs,omitempty"`
	DistanceKm   *int      `json:"distanceKm,omitempty"`
}

// AlertResponse alerta de accidente registrada.
type AlertResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	VehicleID string    `json:"vehicleId"`
	UserID    string    `json:"userId"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	Message   string    `json:"message,omitempty"`
}
