//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"veritag/internal/domain/product"
	"veritag/internal/infra"
	"veritag/internal/infra/db"
	"veritag/internal/pkg/clock"
	"veritag/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepository struct {
	created []*product.Product
	err     error
}

func (r *fakeProductRepository) Create(_ context.Context, _ db.DBTX, p *product.Product) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, p)
	return nil
}

type fakeMediaStore struct {
	keys []string
	err  error
}

func (m *fakeMediaStore) Put(_ context.Context, key, _ string, _ io.Reader, _ int64) error {
	if m.err != nil {
		return m.err
	}
	m.keys = append(m.keys, key)
	return nil
}

func (m *fakeMediaStore) URL(key string) string { return "https://cdn.example.com/" + key }

type productCommandsFixture struct {
	repo  *fakeProductRepository
	media *fakeMediaStore
	clock *clock.MockClock
	cmds  commands.ProductCommands
}

func newProductCommandsFixture(t *testing.T) *productCommandsFixture {
	t.Helper()

	repo := &fakeProductRepository{}
	media := &fakeMediaStore{}
	clk := clock.NewMockClock(time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC))

	return &productCommandsFixture{
		repo:  repo,
		media: media,
		clock: clk,
		cmds:  commands.NewProductCommands(repo, media, nil, clk),
	}
}

func validInput() commands.CreateProductInput {
	return commands.CreateProductInput{
		Name:           "Premium Label",
		BatchSize:      100,
		UnitPriceCents: 4999,
		Image: &commands.ImageUpload{
			Filename:    "label.png",
			ContentType: "image/png",
			Size:        4,
			Body:        strings.NewReader("\x89PNG"),
		},
	}
}

func TestProductCommands_CreateProduct(t *testing.T) {
	ctx := context.Background()
	principal := commands.Principal{ID: uuid.New()}

	t.Run("creates product and stamps creation time", func(t *testing.T) {
		f := newProductCommandsFixture(t)

		snap, err := f.cmds.CreateProduct(ctx, validInput(), principal)
		require.NoError(t, err)
		require.NotNil(t, snap)

		assert.NotEqual(t, uuid.Nil, snap.ID)
		assert.Equal(t, "Premium Label", snap.Name)
		assert.Equal(t, 100, snap.BatchSize)
		assert.Equal(t, int64(4999), snap.UnitPriceCents)
		assert.Equal(t, principal.ID, snap.OwnerID)

		// The snapshot carries the clock's time, never a zero value:
		// a zero time would reach clients as a nonsense epoch.
		assert.Equal(t, f.clock.Now().UTC(), snap.CreatedAt)
		assert.False(t, snap.CreatedAt.IsZero())

		require.Len(t, f.repo.created, 1)
		assert.Equal(t, f.clock.Now().UTC(), f.repo.created[0].CreatedAt())
	})

	t.Run("image key keeps the original extension", func(t *testing.T) {
		f := newProductCommandsFixture(t)

		snap, err := f.cmds.CreateProduct(ctx, validInput(), principal)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(snap.ImageKey, "products/"))
		assert.True(t, strings.HasSuffix(snap.ImageKey, ".png"))
		require.Len(t, f.media.keys, 1)
		assert.Equal(t, snap.ImageKey, f.media.keys[0])
	})

	t.Run("missing image", func(t *testing.T) {
		f := newProductCommandsFixture(t)
		input := validInput()
		input.Image = nil

		_, err := f.cmds.CreateProduct(ctx, input, principal)
		assert.ErrorIs(t, err, commands.ErrValidation)
		assert.Empty(t, f.repo.created)
	})

	t.Run("invalid batch size", func(t *testing.T) {
		f := newProductCommandsFixture(t)
		input := validInput()
		input.BatchSize = 0

		_, err := f.cmds.CreateProduct(ctx, input, principal)
		assert.ErrorIs(t, err, commands.ErrValidation)
	})

	t.Run("upload failure aborts before the insert", func(t *testing.T) {
		f := newProductCommandsFixture(t)
		f.media.err = errors.New("bucket gone")

		_, err := f.cmds.CreateProduct(ctx, validInput(), principal)
		assert.ErrorIs(t, err, commands.ErrImageUploadFailed)
		assert.Empty(t, f.repo.created)
	})

	t.Run("store unavailable", func(t *testing.T) {
		f := newProductCommandsFixture(t)
		f.repo.err = infra.WrapRepoErr("connection lost", errors.New("conn refused"), infra.KindUnavailable)

		_, err := f.cmds.CreateProduct(ctx, validInput(), principal)
		assert.ErrorIs(t, err, commands.ErrStoreUnavailable)
	})
}
