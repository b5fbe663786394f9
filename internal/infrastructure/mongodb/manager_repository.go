package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/minimart-api/internal/domain/entity"
	"github.com/jhoicas/minimart-api/internal/domain/repository"
)

var _ repository.ManagerRepository = (*ManagerRepo)(nil)

// ManagerRepo implementación del puerto ManagerRepository sobre MongoDB.
type ManagerRepo struct {
	collection[entity.Manager]
}

// NewManagerRepository construye el adaptador de persistencia de gerentes.
func NewManagerRepository(db *mongo.Database) *ManagerRepo {
	return &ManagerRepo{newCollection[entity.Manager](db, managersCollection)}
}

func (r *ManagerRepo) Insert(manager *entity.Manager) (primitive.ObjectID, error) {
	return r.insertOne(manager)
}

func (r *ManagerRepo) GetByID(id primitive.ObjectID) (*entity.Manager, error) {
	return r.findByID(id)
}

func (r *ManagerRepo) GetByUserID(userID primitive.ObjectID) (*entity.Manager, error) {
	return r.findOne(bson.M{"userId": userID})
}

func (r *ManagerRepo) GetAll() ([]*entity.Manager, error) {
	return r.findMany(bson.M{})
}

func (r *ManagerRepo) Delete(id primitive.ObjectID) (bool, error) {
	return r.deleteByID(id)
}
