//go:build unit || e2e

package builder

import (
	"time"

	"veritag/internal/domain/product"
	"veritag/internal/usecase/commands"
	"veritag/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	Name           string
	BatchSize      int
	UnitPriceCents int64
	ImageKey       string
	OwnerID        uuid.UUID
	CreatedAt      time.Time
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		Name:           "Premium Label",
		BatchSize:      100,
		UnitPriceCents: 4999,
		ImageKey:       "products/01h2xcejqtf2nbrexx3vqjhp41.png",
		OwnerID:        uuid.New(),
		CreatedAt:      time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC),
	}
}

// Build methods
func (p *ProductBuilder) BuildDomain() (*product.Product, error) {
	return product.NewProduct(p.Name, p.BatchSize, p.UnitPriceCents, p.ImageKey, p.OwnerID, p.CreatedAt)
}

func (p *ProductBuilder) BuildSnapshot() *commands.ProductSnapshot {
	return &commands.ProductSnapshot{
		ID:             uuid.New(),
		Name:           p.Name,
		BatchSize:      p.BatchSize,
		UnitPriceCents: p.UnitPriceCents,
		ImageKey:       p.ImageKey,
		OwnerID:        p.OwnerID,
		CreatedAt:      p.CreatedAt,
	}
}

func (p *ProductBuilder) BuildView() *queries.ProductView {
	return &queries.ProductView{
		ID:             uuid.New(),
		Name:           p.Name,
		BatchSize:      p.BatchSize,
		UnitPriceCents: p.UnitPriceCents,
		ImageURL:       "https://cdn.example.com/" + p.ImageKey,
		CreatedAt:      time.Now(),
	}
}

// Fluent builder methods
func (p *ProductBuilder) WithName(name string) *ProductBuilder {
	p.Name = name
	return p
}

func (p *ProductBuilder) WithBatchSize(size int) *ProductBuilder {
	p.BatchSize = size
	return p
}

func (p *ProductBuilder) WithUnitPriceCents(cents int64) *ProductBuilder {
	p.UnitPriceCents = cents
	return p
}

func (p *ProductBuilder) WithImageKey(key string) *ProductBuilder {
	p.ImageKey = key
	return p
}

func (p *ProductBuilder) WithOwnerID(ownerID uuid.UUID) *ProductBuilder {
	p.OwnerID = ownerID
	return p
}

func (p *ProductBuilder) WithCreatedAt(at time.Time) *ProductBuilder {
	p.CreatedAt = at
	return p
}
