package repository

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/minimart-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// GetAll omite el hash de password en los documentos retornados.
type UserRepository interface {
	Insert(user *entity.User) (primitive.ObjectID, error)
	GetByID(id primitive.ObjectID) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetAll() ([]*entity.User, error)
	Delete(id primitive.ObjectID) (bool, error)
}
