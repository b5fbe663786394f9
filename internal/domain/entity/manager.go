package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Manager es el perfil de un usuario con rol MANAGER.
type Manager struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name   string             `bson:"name" json:"name"`
	Email  string             `bson:"email" json:"email"`
	UserID primitive.ObjectID `bson:"userId" json:"user_id"`
}
