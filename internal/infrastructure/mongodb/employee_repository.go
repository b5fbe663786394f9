package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/minimart-api/internal/domain/entity"
	"github.com/jhoicas/minimart-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre MongoDB.
type EmployeeRepo struct {
	collection[entity.Employee]
}

// NewEmployeeRepository construye el adaptador de persistencia de empleados.
func NewEmployeeRepository(db *mongo.Database) *EmployeeRepo {
	return &EmployeeRepo{newCollection[entity.Employee](db, employeesCollection)}
}

func (r *EmployeeRepo) Insert(employee *entity.Employee) (primitive.ObjectID, error) {
	return r.insertOne(employee)
}

func (r *EmployeeRepo) GetByID(id primitive.ObjectID) (*entity.Employee, error) {
	return r.findByID(id)
}

func (r *EmployeeRepo) GetByUserID(userID primitive.ObjectID) (*entity.Employee, error) {
	return r.findOne(bson.M{"userId": userID})
}

func (r *EmployeeRepo) GetAll() ([]*entity.Employee, error) {
	return r.findMany(bson.M{})
}

func (r *EmployeeRepo) Delete(id primitive.ObjectID) (bool, error) {
	return r.deleteByID(id)
}
