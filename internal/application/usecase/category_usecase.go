package usecase

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/minimart-api/internal/application/dto"
	"github.com/jhoicas/minimart-api/internal/domain"
	"github.com/jhoicas/minimart-api/internal/domain/entity"
	"github.com/jhoicas/minimart-api/internal/domain/repository"
)

// CategoryUseCase valida y orquesta las operaciones sobre categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. name y details son obligatorios.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := requireStrings(
		field{"name", in.Name},
		field{"details", in.Details},
	); err != nil {
		log.Warn().Err(err).Msg("creación de categoría rechazada por validación")
		return nil, err
	}
	category := &entity.Category{
		Name:    strings.TrimSpace(in.Name),
		Details: strings.TrimSpace(in.Details),
	}
	id, err := uc.repo.Insert(category)
	if err != nil {
		log.Error().Err(err).Msg("insert category")
		return nil, domain.NewServiceError("no se pudo crear la categoría", err)
	}
	category.ID = id
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por id.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	oid, err := requireObjectID("id", id)
	if err != nil {
		return nil, err
	}
	category, err := uc.repo.GetByID(oid)
	if err != nil {
		return nil, domain.NewServiceError("no se pudo obtener la categoría", err)
	}
	return toCategoryResponse(category), nil
}

// GetByName obtiene una categoría por nombre exacto.
func (uc *CategoryUseCase) GetByName(name string) (*dto.CategoryResponse, error) {
	if err := requireStrings(field{"name", name}); err != nil {
		return nil, err
	}
	category, err := uc.repo.GetByName(strings.TrimSpace(name))
	if err != nil {
		return nil, domain.NewServiceError("no se pudo obtener la categoría", err)
	}
	return toCategoryResponse(category), nil
}

// List lista todas las categorías; una colección vacía retorna lista vacía.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.GetAll()
	if err != nil {
		return nil, domain.NewServiceError("no se pudieron listar las categorías", err)
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Delete elimina una categoría por id. Cero coincidencias es not found.
func (uc *CategoryUseCase) Delete(id string) error {
	oid, err := requireObjectID("id", id)
	if err != nil {
		return err
	}
	if _, err := uc.repo.Delete(oid); err != nil {
		return domain.NewServiceError("no se pudo eliminar la categoría", err)
	}
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:      c.ID.Hex(),
		Name:    c.Name,
		Details: c.Details,
	}
}
