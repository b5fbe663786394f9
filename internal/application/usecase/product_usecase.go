package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/minimart-api/internal/application/dto"
	"github.com/jhoicas/minimart-api/internal/domain"
	"github.com/jhoicas/minimart-api/internal/domain/entity"
	"github.com/jhoicas/minimart-api/internal/domain/repository"
)

// ProductUseCase valida y orquesta las operaciones sobre productos. Para el
// registro por nombres resuelve categoría y proveedor a través de sus
// respectivos use cases; nunca toca esas colecciones directamente.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories *CategoryUseCase
	suppliers  *SupplierUseCase
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories *CategoryUseCase, suppliers *SupplierUseCase) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories, suppliers: suppliers}
}

// Create crea un producto con category_id y supplier_id ya resueltos.
// stock y price aceptan cero; cualquier valor negativo se rechaza.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := requireStrings(field{"name", in.Name}); err != nil {
		return nil, err
	}
	categoryID, err := requireObjectID("category_id", in.CategoryID)
	if err != nil {
		return nil, err
	}
	supplierID, err := requireObjectID("supplier_id", in.SupplierID)
	if err != nil {
		return nil, err
	}
	if err := requireNonNegativeInt("stock", in.Stock); err != nil {
		return nil, err
	}
	if err := requireNonNegativeFloat("price", in.Price); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:       strings.TrimSpace(in.Name),
		CategoryID: categoryID,
		SupplierID: supplierID,
		Stock:      in.Stock,
		Price:      in.Price,
	}
	id, err := uc.repo.Insert(product)
	if err != nil {
		return nil, domain.NewServiceError("no se pudo crear el producto", err)
	}
	product.ID = id
	return toProductResponse(product), nil
}

// Register registra un producto resolviendo categoría y proveedor por nombre.
// Un nombre que no resuelve es culpa del caller, no del servidor.
func (uc *ProductUseCase) Register(in dto.RegisterProductRequest) (*dto.ProductResponse, error) {
	if err := requireStrings(
		field{"name", in.Name},
		field{"category_name", in.CategoryName},
		field{"supplier_name", in.SupplierName},
	); err != nil {
		return nil, err
	}

	category, err := uc.categories.GetByName(in.CategoryName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: la categoría %q no existe", domain.ErrInvalidInput, in.CategoryName)
		}
		return nil, err
	}
	supplier, err := uc.suppliers.GetByName(in.SupplierName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: el proveedor %q no existe", domain.ErrInvalidInput, in.SupplierName)
		}
		return nil, err
	}

	return uc.Create(dto.CreateProductRequest{
		Name:       in.Name,
		CategoryID: category.ID,
		SupplierID: supplier.ID,
		Stock:      in.Stock,
		Price:      in.Price,
	})
}

// GetByID obtiene un producto por id.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	oid, err := requireObjectID("id", id)
	if err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(oid)
	if err != nil {
		return nil, domain.NewServiceError("no se pudo obtener el producto", err)
	}
	return toProductResponse(product), nil
}

// ListByCategory lista los productos de una categoría.
func (uc *ProductUseCase) ListByCategory(categoryID string) ([]dto.ProductResponse, error) {
	oid, err := requireObjectID("category_id", categoryID)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.GetByCategory(oid)
	if err != nil {
		return nil, domain.NewServiceError("no se pudieron listar los productos por categoría", err)
	}
	return toProductResponses(list), nil
}

// ListBySupplier lista los productos de un proveedor.
func (uc *ProductUseCase) ListBySupplier(supplierID string) ([]dto.ProductResponse, error) {
	oid, err := requireObjectID("supplier_id", supplierID)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.GetBySupplier(oid)
	if err != nil {
		return nil, domain.NewServiceError("no se pudieron listar los productos por proveedor", err)
	}
	return toProductResponses(list), nil
}

// List lista todos los productos.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.GetAll()
	if err != nil {
		return nil, domain.NewServiceError("no se pudieron listar los productos", err)
	}
	return toProductResponses(list), nil
}

// Delete elimina un producto por id.
func (uc *ProductUseCase) Delete(id string) error {
	oid, err := requireObjectID("id", id)
	if err != nil {
		return err
	}
	if _, err := uc.repo.Delete(oid); err != nil {
		return domain.NewServiceError("no se pudo eliminar el producto", err)
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:         p.ID.Hex(),
		Name:       p.Name,
		CategoryID: p.CategoryID.Hex(),
		SupplierID: p.SupplierID.Hex(),
		Stock:      p.Stock,
		Price:      p.Price,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}
