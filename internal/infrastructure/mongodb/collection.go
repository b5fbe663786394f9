package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/minimart-api/internal/domain"
)

// Nombres de las colecciones físicas.
const (
	categoriesCollection = "categories"
	employeesCollection  = "employees"
	managersCollection   = "managers"
	productsCollection   = "products"
	suppliersCollection  = "suppliers"
	usersCollection      = "users"
)

// collection concentra las operaciones CRUD comunes a los seis repositorios y
// la traducción de errores del driver, una sola vez. Los repos concretos solo
// aportan los finders propios de cada entidad.
//
// Las operaciones usan context.Background(): el core no expone cancelación y
// el timeout lo gobierna la política del propio driver.
type collection[E any] struct {
	coll *mongo.Collection
}

func newCollection[E any](db *mongo.Database, name string) collection[E] {
	return collection[E]{coll: db.Collection(name)}
}

// insertOne persiste el documento y retorna el ObjectID asignado.
func (c collection[E]) insertOne(e *E) (primitive.ObjectID, error) {
	res, err := c.coll.InsertOne(context.Background(), e)
	if err != nil {
		return primitive.NilObjectID, translateWrite(err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("%w: inserted id inesperado %T",
			domain.ErrStorageUnavailable, res.InsertedID)
	}
	return id, nil
}

// findOne retorna el primer documento que cumple el filtro o ErrNotFound.
func (c collection[E]) findOne(filter bson.M, opts ...*options.FindOneOptions) (*E, error) {
	var e E
	if err := c.coll.FindOne(context.Background(), filter, opts...).Decode(&e); err != nil {
		return nil, translateRead(err)
	}
	return &e, nil
}

func (c collection[E]) findByID(id primitive.ObjectID) (*E, error) {
	return c.findOne(bson.M{"_id": id})
}

// findMany retorna los documentos que cumplen el filtro. Una colección vacía
// produce un slice vacío, no un error.
func (c collection[E]) findMany(filter bson.M, opts ...*options.FindOptions) ([]*E, error) {
	ctx := context.Background()
	cur, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, translateRead(err)
	}
	defer cur.Close(ctx)

	out := make([]*E, 0)
	for cur.Next(ctx) {
		var e E
		if err := cur.Decode(&e); err != nil {
			return nil, translateRead(err)
		}
		out = append(out, &e)
	}
	if err := cur.Err(); err != nil {
		return nil, translateRead(err)
	}
	return out, nil
}

// deleteByID elimina exactamente el documento con ese _id. Cero coincidencias
// es ErrNotFound, nunca un true silencioso.
func (c collection[E]) deleteByID(id primitive.ObjectID) (bool, error) {
	res, err := c.coll.DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return false, translateWrite(err)
	}
	if res.DeletedCount == 0 {
		return false, domain.ErrNotFound
	}
	return true, nil
}
