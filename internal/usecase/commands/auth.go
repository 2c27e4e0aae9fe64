package commands

import (
	"context"

	"veritag/internal/domain/user"
	"veritag/internal/infra"
	"veritag/internal/infra/db"
	"veritag/internal/pkg/errs"
	"veritag/internal/pkg/jwt"
	"veritag/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrUserAlreadyExists  = errs.New("user already exists")
	ErrUserNotFound       = errs.New("user not found")
	ErrInvalidCredentials = errs.New("invalid username or password")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) error
	FindByUsername(ctx context.Context, username string) (*UserSnapshot, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type AuthResult struct {
	Token string
	User  *UserSnapshot
}

type AuthCommands interface {
	Register(ctx context.Context, username, plainPassword string, role user.Role) (*AuthResult, error)
	Login(ctx context.Context, credentials user.Credentials) (*AuthResult, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*UserSnapshot, error)
}

type authCommandsImpl struct {
	users      UserRepository
	jwtService *jwt.Service
	dbtx       db.DBTX
}

func NewAuthCommands(users UserRepository, jwtService *jwt.Service, dbtx db.DBTX) AuthCommands {
	return &authCommandsImpl{
		users:      users,
		jwtService: jwtService,
		dbtx:       dbtx,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, username, plainPassword string, role user.Role) (*AuthResult, error) {
	name, err := user.NewUsername(username)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	if _, err = user.NewPassword(plainPassword); err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	if !role.IsValid() {
		return nil, errs.Mark(user.ErrInvalidRole, ErrValidation)
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	entity := user.NewUser(name, hash, role)

	if err := a.users.Create(ctx, a.dbtx, entity); err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrUserAlreadyExists
		case infra.IsKind(err, infra.KindUnavailable):
			return nil, errs.Mark(err, ErrStoreUnavailable)
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	token, err := a.jwtService.GenerateToken(entity.ID(), entity.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{
		Token: token,
		User: &UserSnapshot{
			ID:       entity.ID(),
			Username: entity.Username().String(),
			Role:     entity.Role().String(),
		},
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials user.Credentials) (*AuthResult, error) {
	snap, hash, err := a.users.FindByUsername(ctx, credentials.Username().String())
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrUserNotFound
		case infra.IsKind(err, infra.KindUnavailable):
			return nil, errs.Mark(err, ErrStoreUnavailable)
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	if err := password.Compare(hash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored role is invalid")
	}

	token, err := a.jwtService.GenerateToken(snap.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{Token: token, User: snap}, nil
}

func (a *authCommandsImpl) CurrentUser(ctx context.Context, userID uuid.UUID) (*UserSnapshot, error) {
	snap, err := a.users.FindByID(ctx, userID)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrUserNotFound
		case infra.IsKind(err, infra.KindUnavailable):
			return nil, errs.Mark(err, ErrStoreUnavailable)
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return snap, nil
}
