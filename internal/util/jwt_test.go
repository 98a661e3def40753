package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "my_test_session_secret"

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("u1", "sid-1", testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UID)
	assert.Equal(t, "sid-1", claims.SessionID)
	assert.True(t, claims.ExpiresAt.Time.After(time.Now()))
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT("u1", "sid-1", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "totally_wrong_secret")
	assert.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := GenerateJWT("u1", "sid-1", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, testSecret)
	assert.Error(t, err)
}

func TestParseJWT_Garbage(t *testing.T) {
	_, err := ParseJWT("this.is.not.a.valid.jwt", testSecret)
	assert.Error(t, err)
}
