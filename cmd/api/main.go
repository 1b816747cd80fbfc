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
	"github.com/tu-usuario/emergencias-api/internal/application/analytics"
	"github.com/tu-usuario/emergencias-api/internal/application/auth"
	"github.com/tu-usuario/emergencias-api/internal/application/bootstrap"
	"github.com/tu-usuario/emergencias-api/internal/application/export"
	"github.com/tu-usuario/emergencias-api/internal/application/records"
	"github.com/tu-usuario/emergencias-api/internal/application/usecase"
	infrapdf "github.com/tu-usuario/emergencias-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/emergencias-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/emergencias-api/internal/interfaces/http"
	"github.com/tu-usuario/emergencias-api/pkg/config"
	"github.com/tu-usuario/emergencias-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
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
	hospitalRepo := postgres.NewHospitalRepository(pool)
	recordRepo := postgres.NewRecordRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	// Siembra inicial opcional (hospitales + primer admin sobre base vacía)
	if cfg.Bootstrap.OnStart {
		seeded, err := bootstrap.New(userRepo, hospitalRepo, log).Run(cfg.Bootstrap)
		if err != nil {
			log.Fatal().Err(err).Msg("bootstrap inicial")
		}
		if seeded {
			log.Info().Msg("Siembra inicial completada")
		}
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	hospitalUC := usecase.NewHospitalUseCase(hospitalRepo)
	userUC := usecase.NewUserUseCase(userRepo, hospitalRepo)
	recordsUC := records.NewUseCase(recordRepo, hospitalRepo)
	dashboardUC := analytics.NewDashboardUseCase(recordsUC, statsRepo)
	exportUC := export.NewUseCase(recordsUC)
	pdfGenerator := infrapdf.NewMarotoReportGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Emergencias API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "db": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		HospitalUC:  hospitalUC,
		UserUC:      userUC,
		RecordsUC:   recordsUC,
		DashboardUC: dashboardUC,
		ExportUC:    exportUC,
		PDF:         pdfGenerator,
		JWTSecret:   cfg.JWT.Secret,
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
