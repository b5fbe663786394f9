package dto

// CreateManagerRequest entrada para crear el perfil de un gerente.
type CreateManagerRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	UserID string `json:"user_id"`
}

// ManagerResponse salida de un gerente.
type ManagerResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	UserID string `json:"user_id"`
}
