package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Los repositorios traducen
// cualquier fallo del driver a uno de estos sentinelas antes de retornar.
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrAuthentication = errors.New("credenciales inválidas")
	ErrUsernameTaken  = errors.New("el username ya está registrado")

	// Fallos de infraestructura, nunca culpa del caller.
	ErrDuplicateKey       = errors.New("violación de índice único")
	ErrWriteConcern       = errors.New("write concern no satisfecho")
	ErrQueryFailed        = errors.New("fallo en la ejecución de la consulta")
	ErrTimeout            = errors.New("timeout contra la base de datos")
	ErrStorageUnavailable = errors.New("almacenamiento no disponible")
)

// ServiceError envuelve cualquier fallo de repositorio que cruza la capa de
// servicio. Conserva la causa original para diagnóstico; el adapter HTTP solo
// necesita saber que no es culpa del caller.
type ServiceError struct {
	Msg string
	Err error
}

// NewServiceError construye el envoltorio con contexto legible.
func NewServiceError(msg string, err error) *ServiceError {
	return &ServiceError{Msg: msg, Err: err}
}

func (e *ServiceError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

// Unwrap expone la causa para errors.Is/As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}
