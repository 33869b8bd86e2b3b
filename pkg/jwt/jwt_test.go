package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivelay/fleet-api/pkg/jwt"
)

const secret = "clave-de-prueba"

func TestGenerateParse_IdaYVuelta(t *testing.T) {
	token, err := jwt.Generate(secret, "u1", "ana@flota.co", "fleet-api", 60)
	require.NoError(t, err)

	uid, email, err := jwt.Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", uid)
	assert.Equal(t, "ana@flota.co", email)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate(secret, "u1", "ana@flota.co", "fleet-api", 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse("otra-clave", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(secret, "u1", "ana@flota.co", "fleet-api", -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse(secret, token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "u1", "ana@flota.co", "fleet-api", 60)
	assert.Error(t, err)
}
