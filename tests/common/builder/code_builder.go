//go:build unit || e2e

package builder

import (
	"time"

	"veritag/internal/domain/code"
	"veritag/internal/usecase/commands"
	"veritag/internal/usecase/queries"

	"github.com/google/uuid"
)

type CodeBuilder struct {
	ProductID   uuid.UUID
	BatchNumber string
	Value       string
	State       string
	IssuedAt    time.Time
	UsedAt      *time.Time
}

func NewCodeBuilder() *CodeBuilder {
	return &CodeBuilder{
		ProductID:   uuid.New(),
		BatchNumber: "LOT-2026-001",
		Value:       uuid.NewString(),
		State:       string(code.StateIssued),
		IssuedAt:    time.Now(),
	}
}

// Build methods
func (c *CodeBuilder) BuildSnapshot() *commands.CodeSnapshot {
	return &commands.CodeSnapshot{
		ID:          uuid.New(),
		ProductID:   c.ProductID,
		BatchNumber: c.BatchNumber,
		Value:       c.Value,
		State:       c.State,
		IssuedAt:    c.IssuedAt,
		UsedAt:      c.UsedAt,
	}
}

func (c *CodeBuilder) BuildView() *queries.CodeView {
	return &queries.CodeView{
		ProductID:      c.ProductID,
		ProductName:    "Premium Label",
		UnitPriceCents: 4999,
		ImageURL:       "https://cdn.example.com/products/sample.png",
		BatchNumber:    c.BatchNumber,
		Value:          c.Value,
		State:          c.State,
		IssuedAt:       c.IssuedAt,
		UsedAt:         c.UsedAt,
	}
}

// Fluent builder methods
func (c *CodeBuilder) WithProductID(id uuid.UUID) *CodeBuilder {
	c.ProductID = id
	return c
}

func (c *CodeBuilder) WithBatchNumber(batchNumber string) *CodeBuilder {
	c.BatchNumber = batchNumber
	return c
}

func (c *CodeBuilder) WithValue(value string) *CodeBuilder {
	c.Value = value
	return c
}

func (c *CodeBuilder) AsUsed(at time.Time) *CodeBuilder {
	c.State = string(code.StateUsed)
	c.UsedAt = &at
	return c
}
