package code

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyBatchNumber   = errors.New("batch number cannot be empty")
	ErrBatchNumberTooLong = errors.New("batch number is too long (max 64 characters)")
	ErrAlreadyUsed        = errors.New("code is already used")
)

const MaxBatchNumberLength = 64

type State string

const (
	StateIssued State = "issued"
	StateUsed   State = "used"
)

func (s State) String() string {
	return string(s)
}

// Code is a single redeemable token bound to one (product, batch) pair.
// State only ever moves issued -> used.
type Code struct {
	id          uuid.UUID
	productID   uuid.UUID
	batchNumber string
	value       Value
	state       State
	issuedAt    time.Time
	usedAt      *time.Time
}

func ValidateBatchNumber(batchNumber string) (string, error) {
	batchNumber = strings.TrimSpace(batchNumber)
	if batchNumber == "" {
		return "", ErrEmptyBatchNumber
	}
	if len(batchNumber) > MaxBatchNumberLength {
		return "", ErrBatchNumberTooLong
	}
	return batchNumber, nil
}

// NewBatch mints n codes for (productID, batchNumber), each with a fresh
// value drawn from the token space. Values are checked pairwise distinct
// before any insert; the store's uniqueness constraint remains the final
// guard against cross-batch collisions.
func NewBatch(productID uuid.UUID, batchNumber string, n int) ([]*Code, error) {
	batchNumber, err := ValidateBatchNumber(batchNumber)
	if err != nil {
		return nil, err
	}

	codes := make([]*Code, 0, n)
	seen := make(map[Value]struct{}, n)
	for len(codes) < n {
		v := NewValue()
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		codes = append(codes, &Code{
			id:          uuid.New(),
			productID:   productID,
			batchNumber: batchNumber,
			value:       v,
			state:       StateIssued,
		})
	}
	return codes, nil
}

// MarkUsed performs the issued -> used transition in memory. The durable
// transition goes through the store's compare-and-set; this exists for
// domain-level reasoning and tests.
func (c *Code) MarkUsed(at time.Time) error {
	if c.state == StateUsed {
		return ErrAlreadyUsed
	}
	c.state = StateUsed
	c.usedAt = &at
	return nil
}

func (c *Code) ID() uuid.UUID       { return c.id }
func (c *Code) ProductID() uuid.UUID { return c.productID }
func (c *Code) BatchNumber() string { return c.batchNumber }
func (c *Code) Value() Value        { return c.value }
func (c *Code) State() State        { return c.state }
func (c *Code) IssuedAt() time.Time { return c.issuedAt }
func (c *Code) UsedAt() *time.Time  { return c.usedAt }
