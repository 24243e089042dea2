package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("a@x.com", "a@x.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := ValidateToken(token)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	email, err := ExtractEmailFromToken(token)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", email)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("definitely.not.ajwt")
	require.Error(t, err)
}

func TestExpiredTokenFailsValidation(t *testing.T) {
	token, err := GenerateToken("a@x.com", "a@x.com", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractEmailFromToken(token)
	require.Error(t, err)
}
