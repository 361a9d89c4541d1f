package ports

import (
	"context"
	"time"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/daavo03/node-tours-app/internal/query"
)

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	List(ctx context.Context, q *query.Query) ([]*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByResetToken(ctx context.Context, digest string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	SetPassword(ctx context.Context, id, hash string, changedAt time.Time) error
	SetResetToken(ctx context.Context, id string, digest *string, expires *time.Time) error
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	PurgeExpiredResetTokens(ctx context.Context) (int64, error)
}
