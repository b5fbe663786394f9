package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/minimart-api/internal/domain/entity"
	"github.com/jhoicas/minimart-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre MongoDB.
type ProductRepo struct {
	collection[entity.Product]
}

// NewProductRepository construye el adaptador de persistencia de productos.
func NewProductRepository(db *mongo.Database) *ProductRepo {
	return &ProductRepo{newCollection[entity.Product](db, productsCollection)}
}

func (r *ProductRepo) Insert(product *entity.Product) (primitive.ObjectID, error) {
	return r.insertOne(product)
}

func (r *ProductRepo) GetByID(id primitive.ObjectID) (*entity.Product, error) {
	return r.findByID(id)
}

// GetByCategory retorna los productos que referencian la categoría dada.
func (r *ProductRepo) GetByCategory(categoryID primitive.ObjectID) ([]*entity.Product, error) {
	return r.findMany(bson.M{"categoryId": categoryID})
}

// GetBySupplier retorna los productos que referencian el proveedor dado.
func (r *ProductRepo) GetBySupplier(supplierID primitive.ObjectID) ([]*entity.Product, error) {
	return r.findMany(bson.M{"supplierId": supplierID})
}

func (r *ProductRepo) GetAll() ([]*entity.Product, error) {
	return r.findMany(bson.M{})
}

func (r *ProductRepo) Delete(id primitive.ObjectID) (bool, error) {
	return r.deleteByID(id)
}
