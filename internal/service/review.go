package service

import (
	"context"
	"fmt"
	"time"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/daavo03/node-tours-app/internal/query"
	"github.com/daavo03/node-tours-app/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type ReviewService struct {
	reviewRepo ports.ReviewRepo
	tourRepo   ports.TourRepo
	logger     logger.Logger
}

func NewReviewService(reviewRepo ports.ReviewRepo, tourRepo ports.TourRepo, logger logger.Logger) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, tourRepo: tourRepo, logger: logger}
}

func (s *ReviewService) List(ctx context.Context, q *query.Query) ([]*domain.Review, error) {
	return s.reviewRepo.List(ctx, q)
}

func (s *ReviewService) Get(ctx context.Context, id string) (*domain.Review, error) {
	return s.reviewRepo.GetByID(ctx, id)
}

// Create stores a review; the tour's rating aggregates are refreshed with it.
func (s *ReviewService) Create(ctx context.Context, in domain.ReviewInput) (*domain.Review, error) {
	rv := &domain.Review{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
	}
	in.Apply(rv)

	if err := domain.Validate(rv); err != nil {
		return nil, err
	}

	if _, err := s.tourRepo.GetByID(ctx, rv.TourID); err != nil {
		return nil, fmt.Errorf("check tour: %w", err)
	}

	if err := s.reviewRepo.Create(ctx, rv); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.logger.Info("review created",
		logger.String("review_id", rv.ID),
		logger.String("tour_id", rv.TourID),
		logger.Int("rating", rv.Rating),
	)

	return s.reviewRepo.GetByID(ctx, rv.ID)
}

func (s *ReviewService) Update(ctx context.Context, id string, in domain.ReviewInput) (*domain.Review, error) {
	rv, err := s.authorized(ctx, id)
	if err != nil {
		return nil, err
	}

	content := in.Content()
	content.Apply(rv)
	if err = domain.Validate(rv); err != nil {
		return nil, err
	}

	if err = s.reviewRepo.Update(ctx, rv); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}
	return rv, nil
}

func (s *ReviewService) Delete(ctx context.Context, id string) error {
	if _, err := s.authorized(ctx, id); err != nil {
		return err
	}

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}

// authorized loads the review and checks that the caller may modify it.
// Regular users may only touch their own reviews.
func (s *ReviewService) authorized(ctx context.Context, id string) (*domain.Review, error) {
	rv, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}

	actor, ok := domain.UserFromContext(ctx)
	if !ok {
		return nil, domain.ErrNotLoggedIn
	}
	if actor.Role == domain.RoleUser && actor.ID != rv.UserID {
		return nil, domain.ErrForbidden
	}
	return rv, nil
}
