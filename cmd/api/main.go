package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/drivelay/fleet-api/internal/application/access"
	"github.com/drivelay/fleet-api/internal/application/auth"
	"github.com/drivelay/fleet-api/internal/application/fleet"
	"github.com/drivelay/fleet-api/internal/application/notify"
	"github.com/drivelay/fleet-api/internal/application/usecase"
	"github.com/drivelay/fleet-api/internal/infrastructure/observability"
	"github.com/drivelay/fleet-api/internal/infrastructure/postgres"
	"github.com/drivelay/fleet-api/internal/infrastructure/storage"
	httpRouter "github.com/drivelay/fleet-api/internal/interfaces/http"
	"github.com/drivelay/fleet-api/pkg/config"
	"github.com/drivelay/fleet-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	invitationRepo := postgres.NewInvitationRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	usageRepo := postgres.NewUsageRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)

	metrics := observability.NewMetrics()
	resolver := access.NewResolver(companyRepo, employeeRepo)
	notifier := notify.NewNotifier(notificationRepo, userRepo, vehicleRepo, metrics, log)

	// Almacén de blobs opcional: sin bucket configurado, las subidas de
	// logo/foto responden 503 y el resto de la API funciona igual.
	var uploader storage.Uploader
	if cfg.Storage.Enabled() {
		s3Store, err := storage.NewS3(ctx, cfg.Storage)
		if err != nil {
			log.Fatal().Err(err).Msg("almacén de blobs S3")
		}
		uploader = s3Store
		log.Info().Str("bucket", cfg.Storage.Bucket).Msg("almacén de blobs habilitado")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo, userRepo, resolver, notifier)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, invitationRepo, companyRepo, userRepo, resolver, log)
	vehicleUC := usecase.NewVehicleUseCase(vehicleRepo, resolver)
	fleetUC := fleet.NewUseCase(vehicleRepo, usageRepo, alertRepo, userRepo, notifier, metrics, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "DriveLay Fleet API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CompanyUC:  companyUC,
		EmployeeUC: employeeUC,
		VehicleUC:  vehicleUC,
		FleetUC:    fleetUC,
		Notifier:   notifier,
		Uploader:   uploader,
		Metrics:    metrics,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
