// Package password encapsula el hashing de contraseñas con bcrypt. El salt
// queda embebido en el hash, así que la verificación no necesita estado
// adicional.
package password

import "golang.org/x/crypto/bcrypt"

// Hash produce el hash bcrypt del texto plano con el costo por defecto.
// Nunca registra ni retorna el texto plano.
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Check verifica un texto plano contra un hash almacenado. Un password
// incorrecto retorna false, nunca error.
func Check(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
