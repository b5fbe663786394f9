package usecase

import (
	"strings"

	"github.com/jhoicas/minimart-api/internal/application/dto"
	"github.com/jhoicas/minimart-api/internal/domain"
	"github.com/jhoicas/minimart-api/internal/domain/entity"
	"github.com/jhoicas/minimart-api/internal/domain/repository"
)

// EmployeeUseCase valida y orquesta las operaciones sobre empleados.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create crea el perfil de un empleado ligado a una cuenta existente.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
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
	employee := &entity.Employee{
		Name:   strings.TrimSpace(in.Name),
		Email:  strings.TrimSpace(in.Email),
		UserID: userID,
	}
	id, err := uc.repo.Insert(employee)
	if err != nil {
		return nil, domain.NewServiceError("no se pudo crear el empleado", err)
	}
	employee.ID = id
	return toEmployeeResponse(employee), nil
}

// GetByID obtiene un empleado por id.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	oid, err := requireObjectID("id", id)
	if err != nil {
		return nil, err
	}
	employee, err := uc.repo.GetByID(oid)
	if err != nil {
		return nil, domain.NewServiceError("no se pudo obtener el empleado", err)
	}
	return toEmployeeResponse(employee), nil
}

// List lista todos los empleados.
func (uc *EmployeeUseCase) List() ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.GetAll()
	if err != nil {
		return nil, domain.NewServiceError("no se pudieron listar los empleados", err)
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return items, nil
}

// Delete elimina un empleado por id.
func (uc *EmployeeUseCase) Delete(id string) error {
	oid, err := requireObjectID("id", id)
	if err != nil {
		return err
	}
	if _, err := uc.repo.Delete(oid); err != nil {
		return domain.NewServiceError("no se pudo eliminar el empleado", err)
	}
	return nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:     e.ID.Hex(),
		Name:   e.Name,
		Email:  e.Email,
		UserID: e.UserID.Hex(),
	}
}
