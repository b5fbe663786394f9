package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product representa un producto del inventario. CategoryID y SupplierID son
// referencias lógicas; no hay integridad referencial en el storage.
type Product struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name       string             `bson:"name" json:"name"`
	CategoryID primitive.ObjectID `bson:"categoryId" json:"category_id"`
	SupplierID primitive.ObjectID `bson:"supplierId" json:"supplier_id"`
	Stock      int                `bson:"stock" json:"stock"`
	Price      float64            `bson:"price" json:"price"`
}
