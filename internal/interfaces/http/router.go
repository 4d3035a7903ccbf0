package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almakhzan/warehouse-api/internal/application/alerts"
	"github.com/almakhzan/warehouse-api/internal/application/auth"
	"github.com/almakhzan/warehouse-api/internal/application/inventory"
	"github.com/almakhzan/warehouse-api/internal/application/reporting"
	"github.com/almakhzan/warehouse-api/internal/application/usecase"
	"github.com/almakhzan/warehouse-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	SupplierUC  *usecase.SupplierUseCase
	LocationUC  *usecase.LocationUseCase
	ReasonUC    *usecase.ReasonUseCase
	UserUC      *usecase.UserUseCase
	SettingsUC  *usecase.SettingsUseCase
	ReceivingUC *inventory.ReceivingUseCase
	DispatchUC  *inventory.DispatchingUseCase
	ItemQueryUC *inventory.QueryUseCase
	ReportUC    *reporting.UseCase
	PDFGen      reporting.PDFGenerator
	AlertsUC    *alerts.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
//
// Política de acceso: lectura para cualquier rol autenticado; las operaciones
// de almacén (recepción, despacho, baja) exigen storekeeper o admin; la
// administración de cuentas y la configuración exigen admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	writer := RequireRole(entity.RoleAdmin, entity.RoleStorekeeper)
	admin := RequireRole(entity.RoleAdmin)

	// Catálogo de productos
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", writer, productHandler.Create)
	products.Put("/:id", writer, productHandler.Update)
	products.Delete("/:id", writer, productHandler.Delete)

	// Inventario: recepción, despacho, baja, consulta
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.ReceivingUC, deps.DispatchUC, deps.ItemQueryUC)
	invGroup.Get("/items", inventoryHandler.ListItems)
	invGroup.Get("/items/:id", inventoryHandler.GetItem)
	invGroup.Post("/receive", writer, inventoryHandler.ReceiveBatch)
	invGroup.Post("/receive-bundle", writer, inventoryHandler.ReceiveBundle)
	invGroup.Post("/dispatch", writer, inventoryHandler.Dispatch)
	invGroup.Post("/items/:id/undo-dispatch", writer, inventoryHandler.UndoDispatch)
	invGroup.Post("/scrap", writer, inventoryHandler.Scrap)

	// Reportes (JSON, CSV, PDF) — lectura
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.PDFGen, deps.SettingsUC)
	reports.Get("/receiving", reportHandler.Receiving)
	reports.Get("/receiving/csv", reportHandler.ReceivingCSV)
	reports.Get("/receiving/pdf", reportHandler.ReceivingPDF)
	reports.Get("/dispatch", reportHandler.Dispatch)
	reports.Get("/dispatch/csv", reportHandler.DispatchCSV)
	reports.Get("/dispatch/pdf", reportHandler.DispatchPDF)
	reports.Get("/claim", reportHandler.Claim)
	reports.Get("/claim/csv", reportHandler.ClaimCSV)
	reports.Get("/claim/pdf", reportHandler.ClaimPDF)

	// Alertas — lectura
	alertsGroup := protected.Group("/alerts")
	alertsHandler := NewAlertsHandler(deps.AlertsUC)
	alertsGroup.Get("/low-stock", alertsHandler.LowStock)
	alertsGroup.Get("/warranty", alertsHandler.WarrantyExpiring)

	// Proveedores
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", writer, supplierHandler.Create)
	suppliers.Delete("/:id", writer, supplierHandler.Delete)

	// Jerarquía de ubicaciones
	locationHandler := NewLocationHandler(deps.LocationUC)
	provinces := protected.Group("/provinces")
	provinces.Get("/", locationHandler.ListProvinces)
	provinces.Post("/", writer, locationHandler.CreateProvince)
	provinces.Delete("/:id", writer, locationHandler.DeleteProvince)
	areas := protected.Group("/areas")
	areas.Get("/", locationHandler.ListAreas)
	areas.Post("/", writer, locationHandler.CreateArea)
	areas.Delete("/:id", writer, locationHandler.DeleteArea)
	clients := protected.Group("/clients")
	clients.Get("/", locationHandler.ListClients)
	clients.Post("/", writer, locationHandler.CreateClient)
	clients.Put("/:id", writer, locationHandler.UpdateClient)
	clients.Delete("/:id", writer, locationHandler.DeleteClient)

	// Motivos configurables
	reasons := protected.Group("/reasons")
	reasonHandler := NewReasonHandler(deps.ReasonUC)
	reasons.Get("/", reasonHandler.List)
	reasons.Post("/", writer, reasonHandler.Create)
	reasons.Delete("/:id", writer, reasonHandler.Delete)

	// Cuentas de operador (solo admin)
	users := protected.Group("/users", admin)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Put("/:id", userHandler.Update)

	// Configuración de negocio (solo admin)
	settings := protected.Group("/settings", admin)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)
}
