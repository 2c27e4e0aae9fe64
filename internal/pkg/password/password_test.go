//go:build unit

package password_test

import (
	"testing"

	"veritag/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.Hash("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, password.Compare(hash, "password123"))
	assert.ErrorIs(t, password.Compare(hash, "wrong-password"), password.ErrMismatch)
}

func TestHash_EmptyPassword(t *testing.T) {
	_, err := password.Hash("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}

func TestCompare_EmptyInputs(t *testing.T) {
	assert.ErrorIs(t, password.Compare("", "password123"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Compare("some-hash", ""), password.ErrInvalidPassword)
}
