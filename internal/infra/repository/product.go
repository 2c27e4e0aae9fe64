package repository

import (
	"context"
	"errors"

	"veritag/internal/domain/product"
	"veritag/internal/infra"
	"veritag/internal/infra/db"
	"veritag/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Create(ctx context.Context, dbtx db.DBTX, p *product.Product) error {
	_, err := dbtx.Exec(ctx,
		`INSERT INTO products (id, name, batch_size, unit_price_cents, image_key, owner_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID(), p.Name(), p.BatchSize(), p.UnitPriceCents(), p.ImageKey(), p.OwnerID(), p.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create product", err)
	}
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.ProductSnapshot, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, batch_size, unit_price_cents, image_key, owner_id, created_at
		 FROM products WHERE id = $1`,
		id,
	)

	snap, err := scanProductSnapshot(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}
	return snap, nil
}

func scanProductSnapshot(row pgx.Row) (*commands.ProductSnapshot, error) {
	var snap commands.ProductSnapshot
	err := row.Scan(
		&snap.ID, &snap.Name, &snap.BatchSize, &snap.UnitPriceCents,
		&snap.ImageKey, &snap.OwnerID, &snap.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
