package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/minimart-api/internal/domain"
)

// Traducción de fallos del driver a la taxonomía de dominio. Ningún tipo de
// error de mongo-driver escapa de este paquete; el caller recibe un resultado
// terminal y decide si reintenta.

// translateWrite clasifica fallos de insert/delete.
func translateWrite(err error) error {
	switch {
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", domain.ErrDuplicateKey, err)
	case isWriteConcernFailure(err):
		return fmt.Errorf("%w: %v", domain.ErrWriteConcern, err)
	case isTimeout(err):
		return fmt.Errorf("%w: %v", domain.ErrTimeout, err)
	default:
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
}

// translateRead clasifica fallos de consulta. ErrNoDocuments se vuelve
// ErrNotFound sin decorar: es el caso que los servicios inspeccionan.
func translateRead(err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return domain.ErrNotFound
	case isTimeout(err):
		return fmt.Errorf("%w: %v", domain.ErrTimeout, err)
	case isCommandError(err):
		return fmt.Errorf("%w: %v", domain.ErrQueryFailed, err)
	default:
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
}

func isTimeout(err error) bool {
	return mongo.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded)
}

func isWriteConcernFailure(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) && we.WriteConcernError != nil {
		return true
	}
	var wce mongo.WriteConcernError
	return errors.As(err, &wce)
}

func isCommandError(err error) bool {
	var ce mongo.CommandError
	return errors.As(err, &ce)
}
