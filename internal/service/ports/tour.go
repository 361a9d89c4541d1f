package ports

import (
	"context"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/daavo03/node-tours-app/internal/query"
)

type TourRepo interface {
	List(ctx context.Context, q *query.Query) ([]*domain.Tour, error)
	GetByID(ctx context.Context, id string) (*domain.Tour, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tour, error)
	ListByIDs(ctx context.Context, ids []string) ([]*domain.Tour, error)
	Create(ctx context.Context, t *domain.Tour) error
	Update(ctx context.Context, t *domain.Tour) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context, minRating float64) ([]*domain.TourStats, error)
	MonthlyPlan(ctx context.Context, year int) ([]*domain.MonthlyPlan, error)
	Within(ctx context.Context, lat, lng, radius float64) ([]*domain.Tour, error)
	Distances(ctx context.Context, lat, lng, multiplier float64) ([]*domain.TourDistance, error)
}
