//go:build unit

package user_test

import (
	"strings"
	"testing"

	"veritag/internal/domain/user"
	"veritag/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "test-issuer", actual.Username().String())
		assert.Equal(t, "hashed_password", actual.PasswordHash())
		assert.Equal(t, user.RoleIssuer, actual.Role())
		assert.False(t, actual.CreatedAt().IsZero())
	})

	t.Run("username validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid username OK",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("brand.owner_01") },
			},
			{
				name:   "minimum length OK (3 chars)",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("abc") },
			},
			{
				name:   "too short NG (2 chars)",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("ab") },
				errIs:  user.ErrInvalidUsername,
			},
			{
				name:   "maximum length OK (64 chars)",
				mutate: func(b *builder.UserBuilder) { b.WithUsername(strings.Repeat("a", 64)) },
			},
			{
				name:   "too long NG (65 chars)",
				mutate: func(b *builder.UserBuilder) { b.WithUsername(strings.Repeat("a", 65)) },
				errIs:  user.ErrInvalidUsername,
			},
			{
				name:   "empty username NG",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("") },
				errIs:  user.ErrInvalidUsername,
			},
			{
				name:   "invalid characters NG",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("brand owner!") },
				errIs:  user.ErrInvalidUsername,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "issuer OK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("issuer") },
			},
			{
				name:   "consumer OK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("consumer") },
			},
			{
				name:   "unknown role NG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("superuser") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "empty role NG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})
}

func TestRole_CanIssue(t *testing.T) {
	assert.True(t, user.RoleIssuer.CanIssue())
	assert.False(t, user.RoleConsumer.CanIssue())
}

func TestNewPassword(t *testing.T) {
	t.Run("minimum length OK (8 chars)", func(t *testing.T) {
		_, err := user.NewPassword("12345678")
		assert.NoError(t, err)
	})

	t.Run("too short NG (7 chars)", func(t *testing.T) {
		_, err := user.NewPassword("1234567")
		assert.ErrorIs(t, err, user.ErrInvalidPassword)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewUserBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}
