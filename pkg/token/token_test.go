package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "clave-de-prueba"

func TestIssueYValidate(t *testing.T) {
	tok, err := Issue(testSecret, "user-123", "MANAGER", "minimart-api", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	assert.True(t, Validate(testSecret, tok))
}

func TestExtractDevuelveSubjectYRol(t *testing.T) {
	tok, err := Issue(testSecret, "user-123", "EMPLOYEE", "minimart-api", time.Minute)
	require.NoError(t, err)

	subject, role, err := Extract(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", subject)
	assert.Equal(t, "EMPLOYEE", role)
}

func TestValidateTokenExpirado(t *testing.T) {
	// Token emitido en el pasado con expiración ya vencida.
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-1 * time.Hour)),
		},
		Role: "MANAGER",
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	assert.False(t, Validate(testSecret, tok))
	_, _, err = Extract(testSecret, tok)
	assert.Error(t, err)
}

func TestValidateFirmaIncorrecta(t *testing.T) {
	tok, err := Issue("otra-clave", "user-123", "MANAGER", "minimart-api", time.Minute)
	require.NoError(t, err)

	assert.False(t, Validate(testSecret, tok))
}

func TestValidateTokenAlterado(t *testing.T) {
	tok, err := Issue(testSecret, "user-123", "MANAGER", "minimart-api", time.Minute)
	require.NoError(t, err)

	// Alterar el último carácter invalida la firma.
	altered := tok[:len(tok)-1]
	if tok[len(tok)-1] == 'A' {
		altered += "B"
	} else {
		altered += "A"
	}
	assert.False(t, Validate(testSecret, altered))
}

func TestValidateBasuraNoEsToken(t *testing.T) {
	assert.False(t, Validate(testSecret, "no.es.jwt"))
	assert.False(t, Validate(testSecret, ""))
}

func TestIssueSecretVacio(t *testing.T) {
	_, err := Issue("", "user-123", "MANAGER", "minimart-api", time.Minute)
	assert.Error(t, err)
}

func TestIssueTTLNoPositivoUsaDefault(t *testing.T) {
	tok, err := Issue(testSecret, "user-123", "MANAGER", "minimart-api", 0)
	require.NoError(t, err)
	assert.True(t, Validate(testSecret, tok))
}
