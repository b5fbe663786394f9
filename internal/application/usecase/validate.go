package usecase

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/minimart-api/internal/domain"
)

// Las reglas de validación se declaran como datos: cada use case arma su
// tabla de campos y la pasa por estas funciones antes de tocar el
// repositorio. Todo rechazo envuelve domain.ErrInvalidInput.

type field struct {
	name  string
	value string
}

// requireStrings rechaza el primer campo nulo o en blanco (tras recortar).
func requireStrings(fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s es requerido", domain.ErrInvalidInput, f.name)
		}
	}
	return nil
}

// requireObjectID exige presencia y formato hex válido de un identificador.
func requireObjectID(name, raw string) (primitive.ObjectID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return primitive.NilObjectID, fmt.Errorf("%w: %s es requerido", domain.ErrInvalidInput, name)
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s no es un id válido", domain.ErrInvalidInput, name)
	}
	return id, nil
}

// requireNonNegativeInt acepta cero; el límite es inclusivo en 0.
func requireNonNegativeInt(name string, v int) error {
	if v < 0 {
		return fmt.Errorf("%w: %s no puede ser negativo", domain.ErrInvalidInput, name)
	}
	return nil
}

// requireNonNegativeFloat acepta cero; el límite es inclusivo en 0.
func requireNonNegativeFloat(name string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%w: %s no puede ser negativo", domain.ErrInvalidInput, name)
	}
	return nil
}
