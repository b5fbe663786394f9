package usecase

import (
	"strings"

	"github.com/jhoicas/minimart-api/internal/application/dto"
	"github.com/jhoicas/minimart-api/internal/domain"
	"github.com/jhoicas/minimart-api/internal/domain/entity"
	"github.com/jhoicas/minimart-api/internal/domain/repository"
)

// SupplierUseCase valida y orquesta las operaciones sobre proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor. Los cuatro campos son obligatorios.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if err := requireStrings(
		field{"name", in.Name},
		field{"address", in.Address},
		field{"contact_number", in.ContactNumber},
		field{"email", in.Email},
	); err != nil {
		return nil, err
	}
	supplier := &entity.Supplier{
		Name:          strings.TrimSpace(in.Name),
		Address:       strings.TrimSpace(in.Address),
		ContactNumber: strings.TrimSpace(in.ContactNumber),
		Email:         strings.TrimSpace(in.Email),
	}
	id, err := uc.repo.Insert(supplier)
	if err != nil {
		return nil, domain.NewServiceError("no se pudo crear el proveedor", err)
	}
	supplier.ID = id
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por id.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	oid, err := requireObjectID("id", id)
	if err != nil {
		return nil, err
	}
	supplier, err := uc.repo.GetByID(oid)
	if err != nil {
		return nil, domain.NewServiceError("no se pudo obtener el proveedor", err)
	}
	return toSupplierResponse(supplier), nil
}

// GetByName obtiene un proveedor por nombre exacto.
func (uc *SupplierUseCase) GetByName(name string) (*dto.SupplierResponse, error) {
	if err := requireStrings(field{"name", name}); err != nil {
		return nil, err
	}
	supplier, err := uc.repo.GetByName(strings.TrimSpace(name))
	if err != nil {
		return nil, domain.NewServiceError("no se pudo obtener el proveedor", err)
	}
	return toSupplierResponse(supplier), nil
}

// List lista todos los proveedores.
func (uc *SupplierUseCase) List() ([]dto.SupplierResponse, error) {
	list, err := uc.repo.GetAll()
	if err != nil {
		return nil, domain.NewServiceError("no se pudieron listar los proveedores", err)
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return items, nil
}

// Delete elimina un proveedor por id.
func (uc *SupplierUseCase) Delete(id string) error {
	oid, err := requireObjectID("id", id)
	if err != nil {
		return err
	}
	if _, err := uc.repo.Delete(oid); err != nil {
		return domain.NewServiceError("no se pudo eliminar el proveedor", err)
	}
	return nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:            s.ID.Hex(),
		Name:          s.Name,
		Address:       s.Address,
		ContactNumber: s.ContactNumber,
		Email:         s.Email,
	}
}
