package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"veritag/internal/domain/code"
	"veritag/internal/infra"
	"veritag/internal/infra/db"
	"veritag/internal/infra/metrics"
	"veritag/internal/pkg/clock"
	"veritag/internal/pkg/config"
	"veritag/internal/pkg/errs"
	"veritag/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound         = errs.New("product not found")
	ErrNotOwner                = errs.New("product is not owned by caller")
	ErrBatchAlreadyIssued      = errs.New("batch already issued")
	ErrIssuanceFailed          = errs.New("batch issuance failed")
	ErrInvalidCode             = errs.New("invalid code")
	ErrRedemptionFailed        = errs.New("code redemption failed")
	ErrStoreUnavailable        = errs.New("store unavailable")
	ErrValidation              = errs.New("validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// CodeStore exposes the two atomic primitives the coordinators rely on:
// ReserveBatch is an insert-if-absent on (productID, batchNumber) and
// CompareAndSetUsed is a conditional state write. Both must be linearizable
// for concurrent callers on the same key; the Postgres implementation gets
// this from its uniqueness constraints and row-level write locks.
type CodeStore interface {
	ReserveBatch(ctx context.Context, dbtx db.DBTX, productID uuid.UUID, batchNumber string, size int) error
	InsertCodes(ctx context.Context, dbtx db.DBTX, codes []*code.Code) error
	CompareAndSetUsed(ctx context.Context, codeID uuid.UUID, usedAt time.Time) (bool, error)
	FindByValue(ctx context.Context, value string) (*CodeSnapshot, error)
}

type ProductReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
}

// BatchIssuedEvent and CodeRedeemedEvent are published best-effort after the
// store commit; delivery failures are logged and never fail the request.
type BatchIssuedEvent struct {
	ProductID   uuid.UUID `json:"product_id"`
	BatchNumber string    `json:"batch_number"`
	Count       int       `json:"count"`
	IssuedAt    time.Time `json:"issued_at"`
}

type CodeRedeemedEvent struct {
	CodeID    uuid.UUID `json:"code_id"`
	ProductID uuid.UUID `json:"product_id"`
	Value     string    `json:"value"`
	UsedAt    time.Time `json:"used_at"`
}

type EventPublisher interface {
	PublishBatchIssued(ctx context.Context, ev BatchIssuedEvent) error
	PublishCodeRedeemed(ctx context.Context, ev CodeRedeemedEvent) error
}

type IssueBatchResult struct {
	ProductID   uuid.UUID
	BatchNumber string
	Count       int
	Values      []string
	IssuedAt    time.Time
}

type CodeCommands interface {
	// IssueBatch mints product.BatchSize codes for (productID, batchNumber)
	// exactly once. A second attempt for the same pair fails with
	// ErrBatchAlreadyIssued, deterministically, even under concurrency.
	IssueBatch(ctx context.Context, productID uuid.UUID, batchNumber string, principal Principal) (*IssueBatchResult, error)
	// Redeem transitions a code issued -> used exactly once. Redeeming an
	// already-used code is not an error: it returns the current record with
	// the original usedAt, so duplicate scans are safe.
	Redeem(ctx context.Context, value string, principal Principal) (*CodeSnapshot, error)
}

type codeCommandsImpl struct {
	codes        CodeStore
	products     ProductReader
	events       EventPublisher
	metrics      *metrics.Metrics
	txm          shared.TxManager
	clock        clock.Clock
	storeTimeout time.Duration
}

func NewCodeCommands(
	codes CodeStore,
	products ProductReader,
	events EventPublisher,
	m *metrics.Metrics,
	txm shared.TxManager,
	clk clock.Clock,
	cfg config.Config,
) CodeCommands {
	timeout := cfg.DB.QueryTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &codeCommandsImpl{
		codes:        codes,
		products:     products,
		events:       events,
		metrics:      m,
		txm:          txm,
		clock:        clk,
		storeTimeout: timeout,
	}
}

func (c *codeCommandsImpl) IssueBatch(ctx context.Context, productID uuid.UUID, batchNumber string, principal Principal) (*IssueBatchResult, error) {
	batchNumber, err := code.ValidateBatchNumber(batchNumber)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, c.storeTimeout)
	defer cancel()

	productSnap, err := c.products.FindByID(ctx, productID)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrProductNotFound
		case infra.IsKind(err, infra.KindUnavailable):
			return nil, errs.Mark(err, ErrStoreUnavailable)
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	if productSnap.OwnerID != principal.ID {
		return nil, ErrNotOwner
	}

	codes, err := code.NewBatch(productID, batchNumber, productSnap.BatchSize)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	issuedAt := c.clock.Now().UTC()

	// The batch reservation and the code inserts share one transaction:
	// a failure anywhere rolls back both, so issuance is all-or-nothing and
	// a failed attempt releases the (productID, batchNumber) reservation.
	err = c.txm.WithTx(ctx, func(tx db.DBTX) error {
		if reserveErr := c.codes.ReserveBatch(ctx, tx, productID, batchNumber, productSnap.BatchSize); reserveErr != nil {
			if infra.IsKind(reserveErr, infra.KindDuplicateKey) {
				return ErrBatchAlreadyIssued
			}
			return reserveErr
		}

		return c.codes.InsertCodes(ctx, tx, codes)
	})
	if err != nil {
		return nil, c.classifyIssuanceErr(err)
	}

	values := make([]string, len(codes))
	for i, cd := range codes {
		values[i] = cd.Value().String()
	}

	c.metrics.BatchIssuanceTotal.WithLabelValues(metrics.OutcomeIssued).Inc()
	c.metrics.CodesIssuedTotal.Add(float64(len(values)))

	c.publishBatchIssued(ctx, BatchIssuedEvent{
		ProductID:   productID,
		BatchNumber: batchNumber,
		Count:       len(values),
		IssuedAt:    issuedAt,
	})

	return &IssueBatchResult{
		ProductID:   productID,
		BatchNumber: batchNumber,
		Count:       len(values),
		Values:      values,
		IssuedAt:    issuedAt,
	}, nil
}

func (c *codeCommandsImpl) classifyIssuanceErr(err error) error {
	switch {
	case errors.Is(err, ErrBatchAlreadyIssued):
		c.metrics.BatchIssuanceTotal.WithLabelValues(metrics.OutcomeAlreadyIssued).Inc()
		return ErrBatchAlreadyIssued
	case infra.IsKind(err, infra.KindUnavailable),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		c.metrics.BatchIssuanceTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		return errs.Mark(err, ErrStoreUnavailable)
	default:
		// Includes the freak cross-batch value collision: the transaction
		// rolled back, no partial batch is visible.
		c.metrics.BatchIssuanceTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		return errs.Mark(err, ErrIssuanceFailed)
	}
}

func (c *codeCommandsImpl) Redeem(ctx context.Context, value string, _ Principal) (*CodeSnapshot, error) {
	if _, err := code.ParseValue(value); err != nil {
		return nil, ErrInvalidCode
	}

	ctx, cancel := context.WithTimeout(ctx, c.storeTimeout)
	defer cancel()

	snap, err := c.codes.FindByValue(ctx, value)
	if err != nil {
		return nil, c.classifyRedemptionErr(err)
	}

	if snap.State == code.StateUsed.String() {
		c.metrics.RedemptionTotal.WithLabelValues(metrics.OutcomeReplayed).Inc()
		return snap, nil
	}

	usedAt := c.clock.Now().UTC()

	won, err := c.codes.CompareAndSetUsed(ctx, snap.ID, usedAt)
	if err != nil {
		return nil, c.classifyRedemptionErr(err)
	}

	if !won {
		// Lost the compare-and-set: a concurrent redeem committed first.
		// Read back the committed record; its usedAt is preserved.
		snap, err = c.codes.FindByValue(ctx, value)
		if err != nil {
			return nil, c.classifyRedemptionErr(err)
		}
		c.metrics.RedemptionTotal.WithLabelValues(metrics.OutcomeReplayed).Inc()
		return snap, nil
	}

	snap.State = code.StateUsed.String()
	snap.UsedAt = &usedAt

	c.metrics.RedemptionTotal.WithLabelValues(metrics.OutcomeRedeemed).Inc()

	c.publishCodeRedeemed(ctx, CodeRedeemedEvent{
		CodeID:    snap.ID,
		ProductID: snap.ProductID,
		Value:     snap.Value,
		UsedAt:    usedAt,
	})

	return snap, nil
}

func (c *codeCommandsImpl) classifyRedemptionErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		c.metrics.RedemptionTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return ErrInvalidCode
	case infra.IsKind(err, infra.KindUnavailable):
		return errs.Mark(err, ErrStoreUnavailable)
	default:
		return errs.Mark(err, ErrRedemptionFailed)
	}
}

func (c *codeCommandsImpl) publishBatchIssued(ctx context.Context, ev BatchIssuedEvent) {
	if err := c.events.PublishBatchIssued(ctx, ev); err != nil {
		slog.Warn("failed to publish batch issued event",
			"product_id", ev.ProductID, "batch_number", ev.BatchNumber, "error", err)
	}
}

func (c *codeCommandsImpl) publishCodeRedeemed(ctx context.Context, ev CodeRedeemedEvent) {
	if err := c.events.PublishCodeRedeemed(ctx, ev); err != nil {
		slog.Warn("failed to publish code redeemed event",
			"code_id", ev.CodeID, "error", err)
	}
}
