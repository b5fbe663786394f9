package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/minimart-api/internal/domain/entity"
	"github.com/jhoicas/minimart-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre MongoDB.
type CategoryRepo struct {
	collection[entity.Category]
}

// NewCategoryRepository construye el adaptador de persistencia de categorías.
func NewCategoryRepository(db *mongo.Database) *CategoryRepo {
	return &CategoryRepo{newCollection[entity.Category](db, categoriesCollection)}
}

func (r *CategoryRepo) Insert(category *entity.Category) (primitive.ObjectID, error) {
	return r.insertOne(category)
}

func (r *CategoryRepo) GetByID(id primitive.ObjectID) (*entity.Category, error) {
	return r.findByID(id)
}

func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	return r.findOne(bson.M{"name": name})
}

func (r *CategoryRepo) GetAll() ([]*entity.Category, error) {
	return r.findMany(bson.M{})
}

func (r *CategoryRepo) Delete(id primitive.ObjectID) (bool, error) {
	return r.deleteByID(id)
}
