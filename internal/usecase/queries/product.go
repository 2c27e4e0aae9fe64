package queries

import (
	"context"
	"time"

	"veritag/internal/infra"
	"veritag/internal/pkg/errs"

	"github.com/google/uuid"
)

// ProductView is the read model returned to issuers; ImageURL is resolved
// from the stored object key at query time.
type ProductView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	BatchSize      int       `json:"batch_size"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	ImageURL       string    `json:"image_url"`
	CreatedAt      time.Time `json:"created_at"`
}

// ImageURLResolver turns a stored object key into a public URL.
type ImageURLResolver interface {
	URL(key string) string
}

type ProductReadStore interface {
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ProductRow, error)
}

// ProductRow is what the read store returns before URL resolution.
type ProductRow struct {
	ID             uuid.UUID
	Name           string
	BatchSize      int
	UnitPriceCents int64
	ImageKey       string
	CreatedAt      time.Time
}

type ProductQueries interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ProductView, error)
}

type productQueriesImpl struct {
	store    ProductReadStore
	resolver ImageURLResolver
}

func NewProductQueries(store ProductReadStore, resolver ImageURLResolver) ProductQueries {
	return &productQueriesImpl{store: store, resolver: resolver}
}

func (q *productQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ProductView, error) {
	rows, err := q.store.FindByOwner(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindUnavailable) {
			return nil, errs.Wrap(err, "store unavailable")
		}
		return nil, errs.Wrap(err, "failed to list products")
	}

	views := make([]*ProductView, len(rows))
	for i, row := range rows {
		views[i] = &ProductView{
			ID:             row.ID,
			Name:           row.Name,
			BatchSize:      row.BatchSize,
			UnitPriceCents: row.UnitPriceCents,
			ImageURL:       q.resolver.URL(row.ImageKey),
			CreatedAt:      row.CreatedAt,
		}
	}
	return views, nil
}
