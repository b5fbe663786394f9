package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/minimart-api/internal/domain/entity"
	"github.com/jhoicas/minimart-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre MongoDB. La colección
// users lleva índice único sobre username (ver Client.EnsureIndexes); un
// insert que lo viole retorna ErrDuplicateKey.
type UserRepo struct {
	collection[entity.User]
}

// NewUserRepository construye el adaptador de persistencia de usuarios.
func NewUserRepository(db *mongo.Database) *UserRepo {
	return &UserRepo{newCollection[entity.User](db, usersCollection)}
}

func (r *UserRepo) Insert(user *entity.User) (primitive.ObjectID, error) {
	return r.insertOne(user)
}

func (r *UserRepo) GetByID(id primitive.ObjectID) (*entity.User, error) {
	return r.findByID(id)
}

func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.findOne(bson.M{"username": username})
}

// GetAll lista los usuarios sin el hash de password.
func (r *UserRepo) GetAll() ([]*entity.User, error) {
	projection := options.Find().SetProjection(bson.M{"password": 0})
	return r.findMany(bson.M{}, projection)
}

func (r *UserRepo) Delete(id primitive.ObjectID) (bool, error) {
	return r.deleteByID(id)
}
