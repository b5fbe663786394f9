package repository

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/minimart-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
type EmployeeRepository interface {
	Insert(employee *entity.Employee) (primitive.ObjectID, error)
	GetByID(id primitive.ObjectID) (*entity.Employee, error)
	GetByUserID(userID primitive.ObjectID) (*entity.Employee, error)
	GetAll() ([]*entity.Employee, error)
	Delete(id primitive.ObjectID) (bool, error)
}
