package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("66f1a2b3c4d5e6f708091a0b", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "66f1a2b3c4d5e6f708091a0b", claims.Admin_id)
	assert.Equal(t, "admin", claims.Role)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	require.Error(t, err)

	token, err := GenerateToken("66f1a2b3c4d5e6f708091a0b", "admin")
	require.NoError(t, err)

	_, err = ValidateToken(token + "tampered")
	require.Error(t, err)
}
