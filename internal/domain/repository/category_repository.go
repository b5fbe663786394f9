package repository

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/minimart-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Insert(category *entity.Category) (primitive.ObjectID, error)
	GetByID(id primitive.ObjectID) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	GetAll() ([]*entity.Category, error)
	Delete(id primitive.ObjectID) (bool, error)
}
