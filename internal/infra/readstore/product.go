package readstore

import (
	"context"

	"veritag/internal/infra"
	"veritag/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductReadStore struct {
	pool *pgxpool.Pool
}

func NewProductReadStore(pool *pgxpool.Pool) *ProductReadStore {
	return &ProductReadStore{pool: pool}
}

func (r *ProductReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ProductRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, batch_size, unit_price_cents, image_key, created_at
		 FROM products WHERE owner_id = $1 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products by owner", err)
	}
	defer rows.Close()

	var result []*queries.ProductRow
	for rows.Next() {
		var row queries.ProductRow
		if err := rows.Scan(&row.ID, &row.Name, &row.BatchSize, &row.UnitPriceCents, &row.ImageKey, &row.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product rows", err)
	}
	return result, nil
}
