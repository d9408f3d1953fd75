package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("Secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, "Secret123", hash)

	assert.True(t, CheckPassword("Secret123", hash))
	assert.False(t, CheckPassword("WrongPassword", hash))
}

func TestHashPassword_NotDeterministic(t *testing.T) {
	hash1, err := HashPassword("Secret123")
	assert.NoError(t, err)
	hash2, err := HashPassword("Secret123")
	assert.NoError(t, err)

	// Le sel rend chaque hash différent
	assert.NotEqual(t, hash1, hash2)
}

func TestHashPassword_LongPasswordTruncated(t *testing.T) {
	long := strings.Repeat("a", 100)
	hash, err := HashPassword(long)
	assert.NoError(t, err)

	// Les 72 premiers octets seulement sont pris en compte, des deux côtés
	assert.True(t, CheckPassword(long, hash))
	assert.True(t, CheckPassword(strings.Repeat("a", 72), hash))
	assert.False(t, CheckPassword(strings.Repeat("a", 71), hash))
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.False(t, CheckPassword("Secret123", "not-a-bcrypt-hash"))
		assert.False(t, CheckPassword("Secret123", ""))
	})
}
