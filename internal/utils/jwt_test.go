package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_And_Parse(t *testing.T) {
	token, err := GenerateJWTToken("ciphervault", 42, time.Hour, "sign-key")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := ParseJWTToken(token.SignedString, "ciphervault", "sign-key")
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	_, err := GenerateJWTToken("", 1, time.Hour, "key")
	assert.Error(t, err)

	_, err = GenerateJWTToken("iss", 1, 0, "key")
	assert.Error(t, err)

	_, err = GenerateJWTToken("iss", 1, time.Hour, "")
	assert.Error(t, err)
}

func TestParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken("ciphervault", 7, time.Hour, "right-key")
	require.NoError(t, err)

	_, err = ParseJWTToken(token.SignedString, "ciphervault", "wrong-key")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("someone-else", 7, time.Hour, "key")
	require.NoError(t, err)

	_, err = ParseJWTToken(token.SignedString, "ciphervault", "key")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken("ciphervault", 7, time.Nanosecond, "key")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = ParseJWTToken(token.SignedString, "ciphervault", "key")
	assert.True(t, errors.Is(err, ErrTokenExpired))
}
