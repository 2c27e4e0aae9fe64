//go:build unit

package code_test

import (
	"strings"
	"testing"
	"time"

	"veritag/internal/domain/code"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBatchNumber(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "plain batch number OK", input: "LOT-2026-001", want: "LOT-2026-001"},
		{name: "surrounding whitespace is trimmed", input: "  LOT-7  ", want: "LOT-7"},
		{name: "maximum length OK (64 chars)", input: strings.Repeat("x", 64), want: strings.Repeat("x", 64)},
		{name: "too long NG (65 chars)", input: strings.Repeat("x", 65), errIs: code.ErrBatchNumberTooLong},
		{name: "empty NG", input: "", errIs: code.ErrEmptyBatchNumber},
		{name: "whitespace-only NG", input: "   ", errIs: code.ErrEmptyBatchNumber},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := code.ValidateBatchNumber(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewBatch(t *testing.T) {
	t.Run("mints the requested number of codes", func(t *testing.T) {
		productID := uuid.New()
		codes, err := code.NewBatch(productID, "LOT-1", 100)
		require.NoError(t, err)
		require.Len(t, codes, 100)

		for _, c := range codes {
			assert.Equal(t, productID, c.ProductID())
			assert.Equal(t, "LOT-1", c.BatchNumber())
			assert.Equal(t, code.StateIssued, c.State())
			assert.Nil(t, c.UsedAt())
		}
	})

	t.Run("values are pairwise distinct and well formed", func(t *testing.T) {
		codes, err := code.NewBatch(uuid.New(), "LOT-1", 1000)
		require.NoError(t, err)

		seen := make(map[code.Value]struct{}, len(codes))
		for _, c := range codes {
			_, dup := seen[c.Value()]
			assert.False(t, dup, "duplicate value %s", c.Value())
			seen[c.Value()] = struct{}{}

			_, parseErr := code.ParseValue(c.Value().String())
			assert.NoError(t, parseErr)
		}
	})

	t.Run("invalid batch number is rejected", func(t *testing.T) {
		_, err := code.NewBatch(uuid.New(), "", 10)
		assert.ErrorIs(t, err, code.ErrEmptyBatchNumber)
	})
}

func TestCode_MarkUsed(t *testing.T) {
	codes, err := code.NewBatch(uuid.New(), "LOT-1", 1)
	require.NoError(t, err)
	c := codes[0]

	usedAt := time.Now()
	require.NoError(t, c.MarkUsed(usedAt))
	assert.Equal(t, code.StateUsed, c.State())
	require.NotNil(t, c.UsedAt())
	assert.Equal(t, usedAt, *c.UsedAt())

	// second transition must fail and must not move usedAt
	err = c.MarkUsed(usedAt.Add(time.Minute))
	assert.ErrorIs(t, err, code.ErrAlreadyUsed)
	assert.Equal(t, usedAt, *c.UsedAt())
}

func TestParseValue(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		v := code.NewValue()
		parsed, err := code.ParseValue(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := code.ParseValue("not-a-code")
		assert.Error(t, err)
	})
}
