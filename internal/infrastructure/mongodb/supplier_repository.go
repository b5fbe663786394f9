package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/minimart-api/internal/domain/entity"
	"github.com/jhoicas/minimart-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre MongoDB.
type SupplierRepo struct {
	collection[entity.Supplier]
}

// NewSupplierRepository construye el adaptador de persistencia de proveedores.
func NewSupplierRepository(db *mongo.Database) *SupplierRepo {
	return &SupplierRepo{newCollection[entity.Supplier](db, suppliersCollection)}
}

func (r *SupplierRepo) Insert(supplier *entity.Supplier) (primitive.ObjectID, error) {
	return r.insertOne(supplier)
}

func (r *SupplierRepo) GetByID(id primitive.ObjectID) (*entity.Supplier, error) {
	return r.findByID(id)
}

func (r *SupplierRepo) GetByName(name string) (*entity.Supplier, error) {
	return r.findOne(bson.M{"name": name})
}

func (r *SupplierRepo) GetAll() ([]*entity.Supplier, error) {
	return r.findMany(bson.M{})
}

func (r *SupplierRepo) Delete(id primitive.ObjectID) (bool, error) {
	return r.deleteByID(id)
}
