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
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const statsMinRating = 4.5

type TourService struct {
	tourRepo    ports.TourRepo
	reviewRepo  ports.ReviewRepo
	bookingRepo ports.BookingRepo
	logger      logger.Logger
}

func NewTourService(
	tourRepo ports.TourRepo,
	reviewRepo ports.ReviewRepo,
	bookingRepo ports.BookingRepo,
	logger logger.Logger,
) *TourService {
	return &TourService{
		tourRepo:    tourRepo,
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

func (s *TourService) List(ctx context.Context, q *query.Query) ([]*domain.Tour, error) {
	return s.tourRepo.List(ctx, q)
}

// Get returns the tour with guides and reviews populated.
func (s *TourService) Get(ctx context.Context, id string) (*domain.Tour, error) {
	t, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get tour: %w", err)
	}
	return s.withReviews(ctx, t)
}

func (s *TourService) GetBySlug(ctx context.Context, slug string) (*domain.Tour, error) {
	t, err := s.tourRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get tour by slug: %w", err)
	}
	return s.withReviews(ctx, t)
}

func (s *TourService) Create(ctx context.Context, in domain.TourInput) (*domain.Tour, error) {
	t := &domain.Tour{
		ID:             uuid.New().String(),
		RatingsAverage: domain.DefaultRatingsAverage,
		CreatedAt:      time.Now().UTC(),
	}
	in.Apply(t)

	if err := domain.Validate(t); err != nil {
		return nil, err
	}

	if err := s.tourRepo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create tour: %w", err)
	}

	s.logger.Info("tour created",
		logger.String("tour_id", t.ID),
		logger.String("slug", t.Slug),
	)

	return t, nil
}

// Update merges in into the stored tour and validates the result before saving.
func (s *TourService) Update(ctx context.Context, id string, in domain.TourInput) (*domain.Tour, error) {
	t, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get tour: %w", err)
	}

	in.Apply(t)
	if err = domain.Validate(t); err != nil {
		return nil, err
	}

	if err = s.tourRepo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("update tour: %w", err)
	}

	return t, nil
}

func (s *TourService) Delete(ctx context.Context, id string) error {
	if err := s.tourRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete tour: %w", err)
	}

	s.logger.Info("tour deleted", logger.String("tour_id", id))
	return nil
}

func (s *TourService) Stats(ctx context.Context) ([]*domain.TourStats, error) {
	stats, err := s.tourRepo.Stats(ctx, statsMinRating)
	if err != nil {
		return nil, fmt.Errorf("tour stats: %w", err)
	}

	upper := cases.Upper(language.English)
	for _, st := range stats {
		st.Difficulty = upper.String(st.Difficulty)
		st.AvgRating = domain.RoundRating(st.AvgRating)
	}
	return stats, nil
}

func (s *TourService) MonthlyPlan(ctx context.Context, year int) ([]*domain.MonthlyPlan, error) {
	plan, err := s.tourRepo.MonthlyPlan(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("monthly plan: %w", err)
	}
	return plan, nil
}

func (s *TourService) Within(ctx context.Context, distance, lat, lng float64, unit domain.Unit) ([]*domain.Tour, error) {
	tours, err := s.tourRepo.Within(ctx, lat, lng, unit.RadiusRadians(distance))
	if err != nil {
		return nil, fmt.Errorf("tours within: %w", err)
	}
	return tours, nil
}

func (s *TourService) Distances(ctx context.Context, lat, lng float64, unit domain.Unit) ([]*domain.TourDistance, error) {
	distances, err := s.tourRepo.Distances(ctx, lat, lng, unit.Multiplier())
	if err != nil {
		return nil, fmt.Errorf("tour distances: %w", err)
	}
	return distances, nil
}

// ListBooked returns the tours the user holds bookings for.
func (s *TourService) ListBooked(ctx context.Context, userID string) ([]*domain.Tour, error) {
	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.TourID)
	}

	tours, err := s.tourRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list booked tours: %w", err)
	}
	return tours, nil
}

func (s *TourService) withReviews(ctx context.Context, t *domain.Tour) (*domain.Tour, error) {
	reviews, err := s.reviewRepo.ListByTour(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("list tour reviews: %w", err)
	}
	t.Reviews = reviews
	return t, nil
}
