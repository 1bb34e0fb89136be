//go:build unit

package password_test

import (
	"testing"

	"greenrfq/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := password.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	_, err = password.HashPassword("short")
	assert.ErrorIs(t, err, password.ErrTooShort)
}

func TestComparePassword(t *testing.T) {
	hash, err := password.HashPassword("s3cure-enough")
	require.NoError(t, err)

	assert.NoError(t, password.ComparePassword(hash, "s3cure-enough"))
	assert.ErrorIs(t, password.ComparePassword(hash, "wrong-password"), password.ErrComparisonFailed)
	assert.ErrorIs(t, password.ComparePassword("", "s3cure-enough"), password.ErrComparisonFailed)
	assert.ErrorIs(t, password.ComparePassword(hash, ""), password.ErrComparisonFailed)
}
