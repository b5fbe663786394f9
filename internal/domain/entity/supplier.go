package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Supplier representa un proveedor de productos.
type Supplier struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Address       string             `bson:"address" json:"address"`
	ContactNumber string             `bson:"contactNumber" json:"contact_number"`
	Email         string             `bson:"email" json:"email"`
}
