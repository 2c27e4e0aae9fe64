package db

import (
	"context"
	"fmt"
	"time"

	"veritag/internal/pkg/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the query surface shared by *pgxpool.Pool and pgx.Tx, so a
// repository method can run standalone or inside a caller-owned transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("invalid database DSN: %w", err)
	}

	poolCfg.MaxConns = 20
	poolCfg.MinConns = 5
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute
	poolCfg.HealthCheckPeriod = time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	cleanup := func() {
		pool.Close()
	}

	return pool, cleanup, nil
}

// initSchema creates the tables and uniqueness constraints the coordinators
// rely on. The constraints are the contract, not an optimization:
// codes.value UNIQUE arbitrates global code uniqueness and the code_batches
// primary key arbitrates exactly-once batch issuance.
func initSchema(ctx context.Context, pool *pgxpool.Pool) error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
		    id UUID PRIMARY KEY,
		    username TEXT NOT NULL UNIQUE,
		    password_hash TEXT NOT NULL,
		    role TEXT NOT NULL CHECK (role IN ('issuer', 'consumer')),
		    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS products (
		    id UUID PRIMARY KEY,
		    name TEXT NOT NULL,
		    batch_size INT NOT NULL CHECK (batch_size > 0),
		    unit_price_cents BIGINT NOT NULL CHECK (unit_price_cents >= 0),
		    image_key TEXT NOT NULL,
		    owner_id UUID NOT NULL REFERENCES users(id),
		    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_products_owner_created_at
		    ON products(owner_id, created_at DESC);

		-- One row per issued batch; the primary key is the insert-if-absent
		-- reservation for (product, batch_number).
		CREATE TABLE IF NOT EXISTS code_batches (
		    product_id UUID NOT NULL REFERENCES products(id),
		    batch_number TEXT NOT NULL,
		    size INT NOT NULL CHECK (size > 0),
		    issued_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		    PRIMARY KEY (product_id, batch_number)
		);

		CREATE TABLE IF NOT EXISTS codes (
		    id UUID PRIMARY KEY,
		    product_id UUID NOT NULL REFERENCES products(id),
		    batch_number TEXT NOT NULL,
		    value TEXT NOT NULL UNIQUE,
		    state TEXT NOT NULL DEFAULT 'issued' CHECK (state IN ('issued', 'used')),
		    issued_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		    used_at TIMESTAMPTZ,
		    FOREIGN KEY (product_id, batch_number) REFERENCES code_batches(product_id, batch_number)
		);

		CREATE INDEX IF NOT EXISTS idx_codes_product_batch
		    ON codes(product_id, batch_number);
	`

	_, err := pool.Exec(ctx, schema)
	return err
}
