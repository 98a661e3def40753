package service

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyPassword_Bcrypt(t *testing.T) {
	hashed, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hashed)

	ok, upgrade := VerifyPassword(hashed, "s3cret")
	assert.True(t, ok)
	assert.False(t, upgrade)

	ok, _ = VerifyPassword(hashed, "wrong")
	assert.False(t, ok)
}

func TestVerifyPassword_LegacyDigest(t *testing.T) {
	sum := sha1.Sum([]byte("s3cret"))
	digest := hex.EncodeToString(sum[:])

	for _, stored := range []string{digest, strings.ToUpper(digest)} {
		ok, upgrade := VerifyPassword(stored, "s3cret")
		assert.True(t, ok)
		assert.True(t, upgrade)
	}

	ok, upgrade := VerifyPassword(digest, "wrong")
	assert.False(t, ok)
	assert.False(t, upgrade)
}

func TestVerifyPassword_NeverComparesPlaintext(t *testing.T) {
	ok, _ := VerifyPassword("s3cret", "s3cret")
	assert.False(t, ok)

	ok, _ = VerifyPassword("", "")
	assert.False(t, ok)
}
