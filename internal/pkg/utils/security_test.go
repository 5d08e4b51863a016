package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("gizli-parola-123")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("gizli-parola-123", hash))
	assert.False(t, CheckPasswordHash("yanlis-parola", hash))
}

func TestSessionJWTRoundTrip(t *testing.T) {
	sessionID := GenerateSessionID()

	token, err := GenerateSessionJWT(sessionID, "secret", 1)
	require.NoError(t, err)

	parsed, err := ParseSessionJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, sessionID, parsed)
}

func TestParseSessionJWT_WrongSecret(t *testing.T) {
	token, err := GenerateSessionJWT(GenerateSessionID(), "secret", 1)
	require.NoError(t, err)

	_, err = ParseSessionJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestGenerateRequestID(t *testing.T) {
	first := GenerateRequestID()
	second := GenerateRequestID()

	assert.True(t, strings.HasPrefix(first, "SVM_SVC_"))
	assert.NotEqual(t, first, second)
}

func TestGenerateImageObjectName(t *testing.T) {
	name := GenerateImageObjectName("hero", "Kapak Foto.PNG")

	assert.True(t, strings.HasPrefix(name, "images/hero-"))
	assert.True(t, strings.HasSuffix(name, ".png"))
}
