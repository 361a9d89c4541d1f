package ports

import (
	"context"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/daavo03/node-tours-app/internal/query"
)

type ReviewRepo interface {
	List(ctx context.Context, q *query.Query) ([]*domain.Review, error)
	ListByTour(ctx context.Context, tourID string) ([]*domain.Review, error)
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	Create(ctx context.Context, r *domain.Review) error
	Update(ctx context.Context, r *domain.Review) error
	Delete(ctx context.Context, id string) error
}
