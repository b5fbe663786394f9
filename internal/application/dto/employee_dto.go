package dto

// CreateEmployeeRequest entrada para crear el perfil de un empleado.
type CreateEmployeeRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	UserID string `json:"user_id"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	UserID string `json:"user_id"`
}
