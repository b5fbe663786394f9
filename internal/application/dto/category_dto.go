package dto

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name    string `json:"name"`
	Details string `json:"details"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Details string `json:"details"`
}
