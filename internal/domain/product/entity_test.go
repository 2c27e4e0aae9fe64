//go:build unit

package product_test

import (
	"strings"
	"testing"

	"veritag/internal/domain/product"
	"veritag/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ProductBuilder)
	errIs  error
}

func TestNewProduct(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		owner := uuid.New()
		actual, err := builder.NewProductBuilder().WithOwnerID(owner).BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Premium Label", actual.Name())
		assert.Equal(t, 100, actual.BatchSize())
		assert.Equal(t, int64(4999), actual.UnitPriceCents())
		assert.Equal(t, owner, actual.OwnerID())
		assert.False(t, actual.CreatedAt().IsZero())
		assert.True(t, actual.IsOwnedBy(owner))
		assert.False(t, actual.IsOwnedBy(uuid.New()))
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "maximum length OK (255 chars)",
				mutate: func(b *builder.ProductBuilder) { b.WithName(strings.Repeat("a", 255)) },
			},
			{
				name:   "too long NG (256 chars)",
				mutate: func(b *builder.ProductBuilder) { b.WithName(strings.Repeat("a", 256)) },
				errIs:  product.ErrProductNameTooLong,
			},
			{
				name:   "empty name NG",
				mutate: func(b *builder.ProductBuilder) { b.WithName("") },
				errIs:  product.ErrEmptyProductName,
			},
			{
				name:   "whitespace-only name NG",
				mutate: func(b *builder.ProductBuilder) { b.WithName("   ") },
				errIs:  product.ErrEmptyProductName,
			},
		})
	})

	t.Run("batch size validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum OK (1)",
				mutate: func(b *builder.ProductBuilder) { b.WithBatchSize(1) },
			},
			{
				name:   "zero NG",
				mutate: func(b *builder.ProductBuilder) { b.WithBatchSize(0) },
				errIs:  product.ErrInvalidBatchSize,
			},
			{
				name:   "negative NG",
				mutate: func(b *builder.ProductBuilder) { b.WithBatchSize(-1) },
				errIs:  product.ErrInvalidBatchSize,
			},
			{
				name:   "maximum OK (100000)",
				mutate: func(b *builder.ProductBuilder) { b.WithBatchSize(100_000) },
			},
			{
				name:   "over maximum NG (100001)",
				mutate: func(b *builder.ProductBuilder) { b.WithBatchSize(100_001) },
				errIs:  product.ErrInvalidBatchSize,
			},
		})
	})

	t.Run("price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero price OK",
				mutate: func(b *builder.ProductBuilder) { b.WithUnitPriceCents(0) },
			},
			{
				name:   "negative price NG",
				mutate: func(b *builder.ProductBuilder) { b.WithUnitPriceCents(-1) },
				errIs:  product.ErrNegativePrice,
			},
		})
	})

	t.Run("image validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing image key NG",
				mutate: func(b *builder.ProductBuilder) { b.WithImageKey("") },
				errIs:  product.ErrMissingImage,
			},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewProductBuilder()
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
