package usecase

import (
	"strings"

	"github.com/jhoicas/minimart-api/internal/application/dto"
	"github.com/jhoicas/minimart-api/internal/domain"
	"github.com/jhoicas/minimart-api/internal/domain/entity"
	"github.com/jhoicas/minimart-api/internal/domain/repository"
)

// ManagerUseCase valida y orquesta las operaciones sobre gerentes.
type ManagerUseCase struct {
	repo repository.ManagerRepository
}

// NewManagerUseCase construye el caso de uso.
func NewManagerUseCase(repo repository.ManagerRepository) *ManagerUseCase {
	return &ManagerUseCase{repo: repo}
}

// Create crea el perfil de un gerente ligado a una cuenta existente.
func (uc *ManagerUseCase) Create(in dto.CreateManagerRequest) (*dto.ManagerResponse, error) {
	if err := requireStrings(
		field{"name", in.Name},
		field{"email", in.Email},
	); err != nil {
		return nil, err
	}
	userID, err := requireObjectID("user_id", in.UserID)
	if err != nil {
		return nil, err
	}
	manager := &entity.Manager{
		Name:   strings.TrimSpace(in.Name),
		Email:  strings.TrimSpace(in.Email),
		UserID: userID,
	}
	id, err := uc.repo.Insert(manager)
	if err != nil {
		return nil, domain.NewServiceError("no se pudo crear el gerente", err)
	}
	manager.ID = id
	return toManagerResponse(manager), nil
}

// GetByID obtiene un gerente por id.
func (uc *ManagerUseCase) GetByID(id string) (*dto.ManagerResponse, error) {
	oid, err := requireObjectID("id", id)
	if err != nil {
		return nil, err
	}
	manager, err := uc.repo.GetByID(oid)
	if err != nil {
		return nil, domain.NewServiceError("no se pudo obtener el gerente", err)
	}
	return toManagerResponse(manager), nil
}

// List lista todos los gerentes.
func (uc *ManagerUseCase) List() ([]dto.ManagerResponse, error) {
	list, err := uc.repo.GetAll()
	if err != nil {
		return nil, domain.NewServiceError("no se pudieron listar los gerentes", err)
	}
	items := make([]dto.ManagerResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toManagerResponse(m))
	}
	return items, nil
}

// Delete elimina un gerente por id.
func (uc *ManagerUseCase) Delete(id string) error {
	oid, err := requireObjectID("id", id)
	if err != nil {
		return err
	}
	if _, err := uc.repo.Delete(oid); err != nil {
		return domain.NewServiceError("no se pudo eliminar el gerente", err)
	}
	return nil
}

func toManagerResponse(m *entity.Manager) *dto.ManagerResponse {
	if m == nil {
		return nil
	}
	return &dto.ManagerResponse{
		ID:     m.ID.Hex(),
		Name:   m.Name,
		Email:  m.Email,
		UserID: m.UserID.Hex(),
	}
}
