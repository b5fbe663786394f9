package repository

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/minimart-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Insert(product *entity.Product) (primitive.ObjectID, error)
	GetByID(id primitive.ObjectID) (*entity.Product, error)
	GetByCategory(categoryID primitive.ObjectID) ([]*entity.Product, error)
	GetBySupplier(supplierID primitive.ObjectID) ([]*entity.Product, error)
	GetAll() ([]*entity.Product, error)
	Delete(id primitive.ObjectID) (bool, error)
}
