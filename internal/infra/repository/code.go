package repository

import (
	"context"
	"errors"
	"time"

	"veritag/internal/domain/code"
	"veritag/internal/infra"
	"veritag/internal/infra/db"
	"veritag/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CodeRepository is the code store. Its two invariant-bearing operations are
// ReserveBatch (insert-if-absent on the batch key) and CompareAndSetUsed
// (conditional state write); both delegate atomicity to Postgres constraints
// rather than to any check performed here.
type CodeRepository struct {
	pool *pgxpool.Pool
}

func NewCodeRepository(pool *pgxpool.Pool) *CodeRepository {
	return &CodeRepository{pool: pool}
}

// ReserveBatch claims (productID, batchNumber) by inserting the batch row.
// The code_batches primary key makes this an atomic insert-if-absent: under
// concurrent issuance of the same pair exactly one insert commits and the
// other surfaces KindDuplicateKey.
func (r *CodeRepository) ReserveBatch(ctx context.Context, dbtx db.DBTX, productID uuid.UUID, batchNumber string, size int) error {
	_, err := dbtx.Exec(ctx,
		`INSERT INTO code_batches (product_id, batch_number, size) VALUES ($1, $2, $3)`,
		productID, batchNumber, size,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to reserve code batch", err)
	}
	return nil
}

// InsertCodes writes a full batch inside the caller's transaction. A unique
// violation on codes.value (a cross-batch collision) fails the whole insert;
// the caller's rollback then releases the batch reservation as well, so no
// partial batch is ever observable.
func (r *CodeRepository) InsertCodes(ctx context.Context, dbtx db.DBTX, codes []*code.Code) error {
	batch := &pgx.Batch{}
	for _, c := range codes {
		batch.Queue(
			`INSERT INTO codes (id, product_id, batch_number, value, state) VALUES ($1, $2, $3, $4, $5)`,
			c.ID(), c.ProductID(), c.BatchNumber(), c.Value().String(), c.State().String(),
		)
	}

	results := dbtx.SendBatch(ctx, batch)
	defer results.Close()

	for range codes {
		if _, err := results.Exec(); err != nil {
			return infra.WrapRepoErr("failed to insert code batch", err)
		}
	}
	return nil
}

// CompareAndSetUsed performs the one-time issued -> used transition. The
// WHERE clause is the compare; zero rows affected means the stored state was
// no longer 'issued' at the moment of the write.
func (r *CodeRepository) CompareAndSetUsed(ctx context.Context, codeID uuid.UUID, usedAt time.Time) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE codes SET state = 'used', used_at = $2 WHERE id = $1 AND state = 'issued'`,
		codeID, usedAt,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark code used", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *CodeRepository) FindByValue(ctx context.Context, value string) (*commands.CodeSnapshot, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, product_id, batch_number, value, state, issued_at, used_at
		 FROM codes WHERE value = $1`,
		value,
	)

	var snap commands.CodeSnapshot
	err := row.Scan(
		&snap.ID, &snap.ProductID, &snap.BatchNumber, &snap.Value,
		&snap.State, &snap.IssuedAt, &snap.UsedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find code by value", err)
	}
	return &snap, nil
}
