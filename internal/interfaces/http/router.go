package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/emergencias-api/internal/application/analytics"
	"github.com/tu-usuario/emergencias-api/internal/application/auth"
	"github.com/tu-usuario/emergencias-api/internal/application/export"
	"github.com/tu-usuario/emergencias-api/internal/application/records"
	"github.com/tu-usuario/emergencias-api/internal/application/usecase"
	"github.com/tu-usuario/emergencias-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	HospitalUC  *usecase.HospitalUseCase
	UserUC      *usecase.UserUseCase
	RecordsUC   *records.UseCase
	DashboardUC *analytics.DashboardUseCase
	ExportUC    *export.UseCase
	PDF         export.RecordPDFGenerator
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil propio
	protected.Get("/me", authHandler.Me)
	protected.Put("/me/password", authHandler.ChangePassword)

	// Hospitales: activos para todos los roles; CRUD solo admin
	hospitalHandler := NewHospitalHandler(deps.HospitalUC)
	protected.Get("/hospitales/activos", hospitalHandler.ListActive)

	// Registros de emergencias
	recordHandler := NewRecordHandler(deps.RecordsUC)
	registros := protected.Group("/registros")
	registros.Get("/", recordHandler.List)
	registros.Post("/", recordHandler.Create)
	registros.Get("/:id", recordHandler.Get)
	registros.Put("/:id", recordHandler.Update)
	registros.Delete("/:id", RequireRole(entity.RoleAdmin), recordHandler.Delete)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)

	// Exportaciones
	exportHandler := NewExportHandler(deps.ExportUC, deps.PDF)
	exportar := protected.Group("/exportar")
	exportar.Get("/csv", exportHandler.CSV)
	exportar.Get("/excel", exportHandler.Excel)
	exportar.Get("/pdf", exportHandler.PDF)

	// Administración (protegido + rol admin)
	admin := protected.Group("/", RequireRole(entity.RoleAdmin))

	hospitales := admin.Group("/hospitales")
	hospitales.Get("/", hospitalHandler.List)
	hospitales.Post("/", hospitalHandler.Create)
	hospitales.Put("/:id", hospitalHandler.Update)
	hospitales.Delete("/:id", hospitalHandler.Deactivate)

	userHandler := NewUserHandler(deps.UserUC)
	usuarios := admin.Group("/usuarios")
	usuarios.Get("/", userHandler.List)
	usuarios.Post("/", userHandler.Create)
	usuarios.Get("/:id", userHandler.Get)
	usuarios.Put("/:id", userHandler.Update)
	usuarios.Delete("/:id", userHandler.Delete)
}
