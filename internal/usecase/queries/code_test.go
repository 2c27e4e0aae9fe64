//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"veritag/internal/infra"
	"veritag/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCodeReadStore struct {
	row *queries.CodeRow
	err error
}

func (s *fakeCodeReadStore) FindViewByValue(_ context.Context, _ string) (*queries.CodeRow, error) {
	return s.row, s.err
}

type prefixResolver struct{}

func (prefixResolver) URL(key string) string { return "https://cdn.example.com/" + key }

func TestCodeQueries_FindByValue(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves the image key to a public URL", func(t *testing.T) {
		usedAt := time.Now()
		row := &queries.CodeRow{
			ProductID:      uuid.New(),
			ProductName:    "Premium Label",
			UnitPriceCents: 4999,
			ImageKey:       "products/sample.png",
			BatchNumber:    "LOT-1",
			Value:          uuid.NewString(),
			State:          "used",
			IssuedAt:       time.Now().Add(-time.Hour),
			UsedAt:         &usedAt,
		}
		q := queries.NewCodeQueries(&fakeCodeReadStore{row: row}, prefixResolver{})

		view, err := q.FindByValue(ctx, row.Value)
		require.NoError(t, err)

		assert.Equal(t, "https://cdn.example.com/products/sample.png", view.ImageURL)
		assert.Equal(t, row.ProductName, view.ProductName)
		assert.Equal(t, row.Value, view.Value)
		assert.Equal(t, row.State, view.State)
		require.NotNil(t, view.UsedAt)
		assert.Equal(t, usedAt, *view.UsedAt)
	})

	t.Run("maps a missing row to ErrCodeNotFound", func(t *testing.T) {
		storeErr := infra.WrapRepoErr("code not found", errors.New("no rows"), infra.KindNotFound)
		q := queries.NewCodeQueries(&fakeCodeReadStore{err: storeErr}, prefixResolver{})

		_, err := q.FindByValue(ctx, uuid.NewString())
		assert.ErrorIs(t, err, queries.ErrCodeNotFound)
	})

	t.Run("passes other store failures through", func(t *testing.T) {
		storeErr := infra.WrapRepoErr("query failed", errors.New("boom"), infra.KindDBFailure)
		q := queries.NewCodeQueries(&fakeCodeReadStore{err: storeErr}, prefixResolver{})

		_, err := q.FindByValue(ctx, uuid.NewString())
		assert.Error(t, err)
		assert.NotErrorIs(t, err, queries.ErrCodeNotFound)
	})
}
