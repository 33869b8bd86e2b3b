package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/drivelay/fleet-api/internal/application/auth"
	"github.com/drivelay/fleet-api/internal/application/fleet"
	"github.com/drivelay/fleet-api/internal/application/notify"
	"github.com/drivelay/fleet-api/internal/application/usecase"
	"github.com/drivelay/fleet-api/internal/infrastructure/observability"
	"github.com/drivelay/fleet-api/internal/infrastructure/storage"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CompanyUC  *usecase.CompanyUseCase
	EmployeeUC *usecase.EmployeeUseCase
	VehicleUC  *usecase.VehicleUseCase
	FleetUC    *fleet.UseCase
	Notifier   *notify.Notifier
	Uploader   storage.Uploader // nil si el almacén de blobs no está configurado
	Metrics    *observability.Metrics
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(
		promhttp.HandlerFor(deps.Metrics.Registry, promhttp.HandlerOpts{}),
	))

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Uploader)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil del actor (protegido)
	me := protected.Group("/auth/me")
	me.Get("/", authHandler.Profile)
	me.Put("/", authHandler.UpdateProfile)
	me.Post("/photo", authHandler.UploadPhoto)

	// Companies (protegido)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Uploader)
	companies.Get("/", companyHandler.ListMine)
	companies.Post("/", companyHandler.Create)
	companies.Post("/join", companyHandler.Join)
	companies.Get("/current", companyHandler.Current)
	companies.Get("/:companyId", companyHandler.Get)
	companies.Put("/:companyId", companyHandler.Update)
	companies.Put("/:companyId/current", companyHandler.SetCurrent)
	companies.Post("/:companyId/logo", companyHandler.UploadLogo)

	// Plantilla e invitaciones (protegido)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees := companies.Group("/:companyId/employees")
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Add)
	employees.Put("/:employeeId", employeeHandler.Update)
	employees.Delete("/:employeeId", employeeHandler.Delete)

	invitations := companies.Group("/:companyId/invitations")
	invitations.Get("/", employeeHandler.ListInvitations)
	invitations.Post("/", employeeHandler.Invite)
	invitations.Patch("/:invitationId", employeeHandler.CancelInvitation)
	invitations.Delete("/:invitationId", employeeHandler.DeleteInvitation)

	// Registro de vehículos (protegido)
	vehicleHandler := NewVehicleHandler(deps.VehicleUC)
	vehicles := companies.Group("/:companyId/vehicles")
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Post("/", vehicleHandler.Create)
	vehicles.Get("/:vehicleId", vehicleHandler.Get)
	vehicles.Put("/:vehicleId", vehicleHandler.Update)
	vehicles.Delete("/:vehicleId", vehicleHandler.Delete)

	// Ciclo retiro/devolución, historial y alertas (protegido)
	fleetHandler := NewFleetHandler(deps.FleetUC)
	vehicles.Post("/:vehicleId/start", fleetHandler.Start)
	vehicles.Post("/:vehicleId/finish", fleetHandler.Finish)
	vehicles.Post("/:vehicleId/report", fleetHandler.ReportAccident)
	companies.Get("/:companyId/usages", fleetHandler.History)
	companies.Get("/:companyId/alerts", fleetHandler.Alerts)

	// Feed de notificaciones (protegido)
	notificationHandler := NewNotificationHandler(deps.Notifier)
	companies.Get("/:companyId/notifications", notificationHandler.Feed)
}
