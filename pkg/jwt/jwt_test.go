package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Campus-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "campus-api-test"
)

func TestGenerateAndParse_ConEsquemaYRol(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "kibo", "instructor", pkgjwt.TypeAccess, testIssuer, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, testIssuer, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, testUserID, claims.Subject)
	assert.Equal(t, "kibo", claims.Schema)
	assert.Equal(t, "instructor", claims.Role)
	assert.Equal(t, pkgjwt.TypeAccess, claims.Type)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestGenerate_TipoDesconocido_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate(testSecret, testUserID, "kibo", "client", "id_token", testIssuer, time.Hour)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, "kibo", "client", pkgjwt.TypeAccess, testIssuer, time.Hour)
	assert.Error(t, err)
}

func TestParse_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "public", "superadmin", pkgjwt.TypeAccess, testIssuer, -time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "public", "client", pkgjwt.TypeRefresh, testIssuer, time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", testIssuer, tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestParse_EmisorDistinto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "kibo", "client", pkgjwt.TypeAccess, "otro-emisor", time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok)
	assert.Error(t, err, "un token de otro emisor no debe aceptarse")
}
