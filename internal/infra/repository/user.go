package repository

import (
	"context"
	"errors"

	"veritag/internal/domain/user"
	"veritag/internal/infra"
	"veritag/internal/infra/db"
	"veritag/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) error {
	_, err := dbtx.Exec(ctx,
		`INSERT INTO users (id, username, password_hash, role) VALUES ($1, $2, $3, $4)`,
		u.ID(), u.Username().String(), u.PasswordHash(), u.Role().String(),
	)
	if err != nil {
		// Unique violation on username classifies as KindDuplicateKey.
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*commands.UserSnapshot, string, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, role, created_at FROM users WHERE username = $1`,
		username,
	)

	var (
		snap commands.UserSnapshot
		hash string
	)
	if err := row.Scan(&snap.ID, &snap.Username, &hash, &snap.Role, &snap.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by username", err)
	}

	return &snap, hash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.UserSnapshot, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, username, role, created_at FROM users WHERE id = $1`,
		id,
	)

	var snap commands.UserSnapshot
	if err := row.Scan(&snap.ID, &snap.Username, &snap.Role, &snap.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &snap, nil
}
