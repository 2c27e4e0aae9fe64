package commands

import (
	"time"

	"veritag/internal/domain/user"

	"github.com/google/uuid"
)

// Principal is the authenticated caller, threaded explicitly through every
// command. Nothing here is read from ambient request state.
type Principal struct {
	ID   uuid.UUID
	Role user.Role
}

// Write-side snapshots keep the command layer off the read-side view types.
type UserSnapshot struct {
	ID        uuid.UUID
	Username  string
	Role      string
	CreatedAt time.Time
}

type ProductSnapshot struct {
	ID             uuid.UUID
	Name           string
	BatchSize      int
	UnitPriceCents int64
	ImageKey       string
	OwnerID        uuid.UUID
	CreatedAt      time.Time
}

type CodeSnapshot struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	BatchNumber string
	Value       string
	State       string
	IssuedAt    time.Time
	UsedAt      *time.Time
}
