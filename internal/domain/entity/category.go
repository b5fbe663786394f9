package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category representa una categoría de productos. El nombre es único por
// convención, no por índice.
type Category struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Details string             `bson:"details" json:"details"`
}
