package repository

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/minimart-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Insert(supplier *entity.Supplier) (primitive.ObjectID, error)
	GetByID(id primitive.ObjectID) (*entity.Supplier, error)
	GetByName(name string) (*entity.Supplier, error)
	GetAll() ([]*entity.Supplier, error)
	Delete(id primitive.ObjectID) (bool, error)
}
