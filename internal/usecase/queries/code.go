package queries

import (
	"context"
	"time"

	"veritag/internal/infra"
	"veritag/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCodeNotFound = errs.New("code not found")

// CodeView resolves a code to its product's public fields plus the code's
// own batch number and state. Read-only; safe under unbounded concurrency.
type CodeView struct {
	ProductID      uuid.UUID  `json:"product_id"`
	ProductName    string     `json:"product_name"`
	UnitPriceCents int64      `json:"unit_price_cents"`
	ImageURL       string     `json:"image_url"`
	BatchNumber    string     `json:"batch_number"`
	Value          string     `json:"value"`
	State          string     `json:"state"`
	IssuedAt       time.Time  `json:"issued_at"`
	UsedAt         *time.Time `json:"used_at,omitempty"`
}

// CodeRow is the joined row before image URL resolution.
type CodeRow struct {
	ProductID      uuid.UUID
	ProductName    string
	UnitPriceCents int64
	ImageKey       string
	BatchNumber    string
	Value          string
	State          string
	IssuedAt       time.Time
	UsedAt         *time.Time
}

type CodeReadStore interface {
	FindViewByValue(ctx context.Context, value string) (*CodeRow, error)
}

type CodeQueries interface {
	FindByValue(ctx context.Context, value string) (*CodeView, error)
}

type codeQueriesImpl struct {
	store    CodeReadStore
	resolver ImageURLResolver
}

func NewCodeQueries(store CodeReadStore, resolver ImageURLResolver) CodeQueries {
	return &codeQueriesImpl{store: store, resolver: resolver}
}

func (q *codeQueriesImpl) FindByValue(ctx context.Context, value string) (*CodeView, error) {
	row, err := q.store.FindViewByValue(ctx, value)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCodeNotFound
		}
		return nil, errs.Wrap(err, "failed to resolve code")
	}

	return &CodeView{
		ProductID:      row.ProductID,
		ProductName:    row.ProductName,
		UnitPriceCents: row.UnitPriceCents,
		ImageURL:       q.resolver.URL(row.ImageKey),
		BatchNumber:    row.BatchNumber,
		Value:          row.Value,
		State:          row.State,
		IssuedAt:       row.IssuedAt,
		UsedAt:         row.UsedAt,
	}, nil
}
