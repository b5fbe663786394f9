package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashYCheck(t *testing.T) {
	hash, err := Hash("secreto123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// El hash nunca contiene el texto plano.
	assert.NotContains(t, hash, "secreto123")

	assert.True(t, Check("secreto123", hash))
}

func TestCheckPasswordIncorrecto(t *testing.T) {
	hash, err := Hash("secreto123")
	require.NoError(t, err)

	assert.False(t, Check("otro-password", hash))
	assert.False(t, Check("", hash))
}

func TestCheckHashCorrupto(t *testing.T) {
	// Un hash que no es bcrypt retorna false, nunca panic.
	assert.False(t, Check("secreto123", "no-es-un-hash"))
}

func TestHashesDistintosPorSalt(t *testing.T) {
	h1, err := Hash("secreto123")
	require.NoError(t, err)
	h2, err := Hash("secreto123")
	require.NoError(t, err)

	// El salt embebido hace que dos hashes del mismo password difieran,
	// pero ambos verifican.
	assert.NotEqual(t, h1, h2)
	assert.True(t, Check("secreto123", h1))
	assert.True(t, Check("secreto123", h2))
}
