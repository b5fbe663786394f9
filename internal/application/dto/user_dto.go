package dto

// RegisterRequest entrada para registrar una cuenta (password en texto, se
// hashea en el use case) junto con su perfil de empleado o gerente.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"` // EMPLOYEE | MANAGER
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// RegisterResponse salida del registro: id de la cuenta y del perfil creado
// según el rol.
type RegisterResponse struct {
	UserID     string `json:"user_id"`
	Role       string `json:"role"`
	EmployeeID string `json:"employee_id,omitempty"`
	ManagerID  string `json:"manager_id,omitempty"`
}

// UserResponse salida de un usuario (nunca incluye el hash).
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse salida con el token JWT emitido.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
