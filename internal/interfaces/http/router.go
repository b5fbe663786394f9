package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/minimart-api/internal/application/auth"
	"github.com/jhoicas/minimart-api/internal/application/usecase"
	"github.com/jhoicas/minimart-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	CategoryUC *usecase.CategoryUseCase
	SupplierUC *usecase.SupplierUseCase
	ProductUC  *usecase.ProductUseCase
	EmployeeUC *usecase.EmployeeUseCase
	ManagerUC  *usecase.ManagerUseCase
	UserUC     *usecase.UserUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Delete("/:id", categoryHandler.Delete)

	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Delete("/:id", supplierHandler.Delete)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Post("/register", productHandler.Register)
	products.Get("/", productHandler.List)
	products.Get("/category/:id", productHandler.ListByCategory)
	products.Get("/supplier/:id", productHandler.ListBySupplier)
	products.Get("/:id", productHandler.GetByID)
	products.Delete("/:id", productHandler.Delete)

	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Delete("/:id", employeeHandler.Delete)

	managers := protected.Group("/managers")
	managerHandler := NewManagerHandler(deps.ManagerUC)
	managers.Post("/", managerHandler.Create)
	managers.Get("/", managerHandler.List)
	managers.Get("/:id", managerHandler.GetByID)
	managers.Delete("/:id", managerHandler.Delete)

	// Cuentas: solo gerentes.
	users := protected.Group("/users", RequireRole(string(entity.RoleManager)))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Delete("/:id", userHandler.Delete)
}
