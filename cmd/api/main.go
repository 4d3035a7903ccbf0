package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/almakhzan/warehouse-api/docs"
	"github.com/almakhzan/warehouse-api/internal/application/alerts"
	"github.com/almakhzan/warehouse-api/internal/application/auth"
	"github.com/almakhzan/warehouse-api/internal/application/inventory"
	"github.com/almakhzan/warehouse-api/internal/application/reporting"
	"github.com/almakhzan/warehouse-api/internal/application/usecase"
	"github.com/almakhzan/warehouse-api/internal/domain"
	"github.com/almakhzan/warehouse-api/internal/domain/entity"
	"github.com/almakhzan/warehouse-api/internal/domain/repository"
	infrapdf "github.com/almakhzan/warehouse-api/internal/infrastructure/pdf"
	"github.com/almakhzan/warehouse-api/internal/infrastructure/postgres"
	httpRouter "github.com/almakhzan/warehouse-api/internal/interfaces/http"
	"github.com/almakhzan/warehouse-api/pkg/config"
	"github.com/almakhzan/warehouse-api/pkg/logger"
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

	productRepo := postgres.NewProductRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	reasonRepo := postgres.NewReasonRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Sembrar la configuración de negocio si la fila todavía no existe.
	if err := seedSettings(settingsRepo, cfg.Warehouse); err != nil {
		log.Fatal().Err(err).Msg("sembrar configuración")
	}

	receivingUC := inventory.NewReceivingUseCase(txRunner, productRepo, supplierRepo, locationRepo)
	dispatchUC := inventory.NewDispatchingUseCase(txRunner, locationRepo)
	itemQueryUC := inventory.NewQueryUseCase(itemRepo)
	reportUC := reporting.NewUseCase(itemRepo, productRepo, locationRepo, supplierRepo, settingsRepo)
	alertsUC := alerts.NewUseCase(itemRepo, productRepo, settingsRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	reasonUC := usecase.NewReasonUseCase(reasonRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
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
		Title:    "Warehouse API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		SupplierUC:  supplierUC,
		LocationUC:  locationUC,
		ReasonUC:    reasonUC,
		UserUC:      userUC,
		SettingsUC:  settingsUC,
		ReceivingUC: receivingUC,
		DispatchUC:  dispatchUC,
		ItemQueryUC: itemQueryUC,
		ReportUC:    reportUC,
		PDFGen:      pdfGenerator,
		AlertsUC:    alertsUC,
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

// seedSettings inserta la fila de configuración desde el entorno en el primer
// arranque. Si la fila ya existe se respeta lo guardado.
func seedSettings(repo repository.SettingsRepository, seed config.WarehouseConfig) error {
	_, err := repo.Get()
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return repo.Save(entity.Settings{
		CompanyName:       seed.CompanyName,
		Currency:          seed.Currency,
		LowStockThreshold: seed.LowStockThreshold,
		WarrantyAlertDays: seed.WarrantyAlertDays,
	})
}
