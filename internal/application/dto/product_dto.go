package dto

// CreateProductRequest entrada para crear un producto con referencias ya
// resueltas a ids.
type CreateProductRequest struct {
	Name       string  `json:"name"`
	CategoryID string  `json:"category_id"`
	SupplierID string  `json:"supplier_id"`
	Stock      int     `json:"stock"`
	Price      float64 `json:"price"`
}

// RegisterProductRequest entrada para registrar un producto por nombres de
// categoría y proveedor; la resolución a ids ocurre en el use case.
type RegisterProductRequest struct {
	Name         string  `json:"name"`
	CategoryName string  `json:"category_name"`
	SupplierName string  `json:"supplier_name"`
	Stock        int     `json:"stock"`
	Price        float64 `json:"price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	CategoryID string  `json:"category_id"`
	SupplierID string  `json:"supplier_id"`
	Stock      int     `json:"stock"`
	Price      float64 `json:"price"`
}
