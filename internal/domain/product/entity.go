package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyProductName   = errors.New("product name cannot be empty")
	ErrProductNameTooLong = errors.New("product name is too long (max 255 characters)")
	ErrInvalidBatchSize   = errors.New("batch size must be positive")
	ErrNegativePrice      = errors.New("unit price cannot be negative")
	ErrMissingImage       = errors.New("product image is required")
)

const (
	MaxProductNameLength = 255
	// MaxBatchSize bounds a single issuance so one request cannot flood the store.
	MaxBatchSize = 100_000
)

// Product is a catalog entry owned by the issuer that created it.
// Immutable after creation; codes reference it by ID.
type Product struct {
	id             uuid.UUID
	name           string
	batchSize      int
	unitPriceCents int64
	imageKey       string
	ownerID        uuid.UUID
	createdAt      time.Time
}

func NewProduct(name string, batchSize int, unitPriceCents int64, imageKey string, ownerID uuid.UUID, createdAt time.Time) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyProductName
	}
	if len(name) > MaxProductNameLength {
		return nil, ErrProductNameTooLong
	}
	if batchSize < 1 || batchSize > MaxBatchSize {
		return nil, ErrInvalidBatchSize
	}
	if unitPriceCents < 0 {
		return nil, ErrNegativePrice
	}
	if imageKey == "" {
		return nil, ErrMissingImage
	}

	return &Product{
		id:             uuid.New(),
		name:           name,
		batchSize:      batchSize,
		unitPriceCents: unitPriceCents,
		imageKey:       imageKey,
		ownerID:        ownerID,
		createdAt:      createdAt.UTC(),
	}, nil
}

func (p *Product) ID() uuid.UUID         { return p.id }
func (p *Product) Name() string          { return p.name }
func (p *Product) BatchSize() int        { return p.batchSize }
func (p *Product) UnitPriceCents() int64 { return p.unitPriceCents }
func (p *Product) ImageKey() string      { return p.imageKey }
func (p *Product) OwnerID() uuid.UUID    { return p.ownerID }
func (p *Product) CreatedAt() time.Time  { return p.createdAt }

// IsOwnedBy reports whether principal may issue batches for this product.
func (p *Product) IsOwnedBy(principal uuid.UUID) bool {
	return p.ownerID == principal
}
