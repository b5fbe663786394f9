// Package token emite y valida tokens JWT firmados con HS256. La llave es
// simétrica y conocida solo por el proceso emisor.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTTL es la vigencia por defecto de un token emitido.
const DefaultTTL = time.Hour

// Claims incluye los claims estándar JWT más el rol de la aplicación, para
// que el middleware RBAC decida sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"` // "EMPLOYEE" | "MANAGER"
}

// Issue genera un token firmado que liga el subject (userID) y su rol, con
// issued-at ahora y expiración a ttl.
func Issue(secret, subjectID, role, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    issuer,
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Validate indica si el token es bien formado, con firma válida y no
// expirado. Cualquier fallo de parseo, firma o expiración retorna false,
// nunca error.
func Validate(secret, tokenString string) bool {
	_, _, err := Extract(secret, tokenString)
	return err == nil
}

// Extract valida el token y devuelve subject (userID) y rol. Retorna error si
// el token es inválido, expirado o tiene firma incorrecta.
func Extract(secret, tokenString string) (subjectID, role string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("token: secret vacío")
	}
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return "", "", fmt.Errorf("claims inválidos")
	}
	return claims.Subject, claims.Role, nil
}
