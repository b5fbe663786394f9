package repository

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/minimart-api/internal/domain/entity"
)

// ManagerRepository define el puerto de persistencia para Manager (DIP).
type ManagerRepository interface {
	Insert(manager *entity.Manager) (primitive.ObjectID, error)
	GetByID(id primitive.ObjectID) (*entity.Manager, error)
	GetByUserID(userID primitive.ObjectID) (*entity.Manager, error)
	GetAll() ([]*entity.Manager, error)
	Delete(id primitive.ObjectID) (bool, error)
}
