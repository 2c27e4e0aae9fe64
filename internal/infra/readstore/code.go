package readstore

import (
	"context"
	"errors"

	"veritag/internal/infra"
	"veritag/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CodeReadStore struct {
	pool *pgxpool.Pool
}

func NewCodeReadStore(pool *pgxpool.Pool) *CodeReadStore {
	return &CodeReadStore{pool: pool}
}

func (r *CodeReadStore) FindViewByValue(ctx context.Context, value string) (*queries.CodeRow, error) {
	var row queries.CodeRow
	err := r.pool.QueryRow(ctx,
		`SELECT c.product_id, p.name, p.unit_price_cents, p.image_key,
		        c.batch_number, c.value, c.state, c.issued_at, c.used_at
		 FROM codes c
		 JOIN products p ON p.id = c.product_id
		 WHERE c.value = $1`,
		value,
	).Scan(
		&row.ProductID, &row.ProductName, &row.UnitPriceCents, &row.ImageKey,
		&row.BatchNumber, &row.Value, &row.State, &row.IssuedAt, &row.UsedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find code view", err)
	}
	return &row, nil
}
