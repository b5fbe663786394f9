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

	"github.com/jhoicas/minimart-api/internal/application/auth"
	"github.com/jhoicas/minimart-api/internal/application/usecase"
	"github.com/jhoicas/minimart-api/internal/infrastructure/mongodb"
	httpRouter "github.com/jhoicas/minimart-api/internal/interfaces/http"
	"github.com/jhoicas/minimart-api/pkg/config"
	"github.com/jhoicas/minimart-api/pkg/logger"
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
	db := mongodb.NewClient(cfg.Mongo)
	if err := db.Connect(ctx); err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("cierre de MongoDB")
		}
	}()
	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("índices de MongoDB")
	}

	userRepo := mongodb.NewUserRepository(db.Database())
	employeeRepo := mongodb.NewEmployeeRepository(db.Database())
	managerRepo := mongodb.NewManagerRepository(db.Database())
	categoryRepo := mongodb.NewCategoryRepository(db.Database())
	supplierRepo := mongodb.NewSupplierRepository(db.Database())
	productRepo := mongodb.NewProductRepository(db.Database())

	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryUC, supplierUC)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	managerUC := usecase.NewManagerUseCase(managerRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	authUC := auth.NewUseCase(userRepo, employeeRepo, managerRepo, auth.TokenConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Minimart API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CategoryUC: categoryUC,
		SupplierUC: supplierUC,
		ProductUC:  productUC,
		EmployeeUC: employeeUC,
		ManagerUC:  managerUC,
		UserUC:     userUC,
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
