package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/daavo03/node-tours-app/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTourService(t *testing.T) (*TourService, *mocks.MockTourRepo, *mocks.MockReviewRepo, *mocks.MockBookingRepo) {
	t.Helper()
	tours := mocks.NewMockTourRepo(t)
	reviews := mocks.NewMockReviewRepo(t)
	bookings := mocks.NewMockBookingRepo(t)
	return NewTourService(tours, reviews, bookings, newTestLogger(t)), tours, reviews, bookings
}

func validTourInput() domain.TourInput {
	difficulty := domain.DifficultyEasy
	return domain.TourInput{
		Name:         ptr("The Forest Hiker"),
		Duration:     ptr(5),
		MaxGroupSize: ptr(25),
		Difficulty:   &difficulty,
		Price:        ptr(397.0),
		Summary:      ptr(" Breathtaking hike through the Canadian Banff National Park "),
		ImageCover:   ptr("tour-1-cover.jpg"),
	}
}

func TestTourService_Create(t *testing.T) {
	svc, tours, _, _ := newTourService(t)

	tours.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	tour, err := svc.Create(context.Background(), validTourInput())

	require.NoError(t, err)
	assert.NotEmpty(t, tour.ID)
	assert.Equal(t, "the-forest-hiker", tour.Slug)
	assert.Equal(t, domain.DefaultRatingsAverage, tour.RatingsAverage)
	assert.Equal(t, "Breathtaking hike through the Canadian Banff National Park", tour.Summary)
}

func TestTourService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(in *domain.TourInput)
		message string
	}{
		{
			name:    "short name",
			modify:  func(in *domain.TourInput) { in.Name = ptr("Short") },
			message: "name must have at least 10 characters",
		},
		{
			name: "unknown difficulty",
			modify: func(in *domain.TourInput) {
				d := domain.Difficulty("extreme")
				in.Difficulty = &d
			},
			message: "difficulty is either: easy, medium, difficult",
		},
		{
			name:    "discount above price",
			modify:  func(in *domain.TourInput) { in.PriceDiscount = ptr(500.0) },
			message: "Discount price (500) should be below regular price",
		},
		{
			name:    "missing summary",
			modify:  func(in *domain.TourInput) { in.Summary = ptr("") },
			message: "Missing summary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := newTourService(t)

			in := validTourInput()
			tt.modify(&in)
			_, err := svc.Create(context.Background(), in)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestTourService_Create_Duplicate(t *testing.T) {
	svc, tours, _, _ := newTourService(t)

	tours.EXPECT().Create(mock.Anything, mock.Anything).Return(&domain.DuplicateError{Value: "The Forest Hiker"})

	_, err := svc.Create(context.Background(), validTourInput())

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestTourService_Update_RevalidatesMergedTour(t *testing.T) {
	svc, tours, _, _ := newTourService(t)

	existing := &domain.Tour{
		ID: "t1", Name: "The Forest Hiker", Duration: 5, MaxGroupSize: 25,
		Difficulty: domain.DifficultyEasy, RatingsAverage: 4.7, Price: 397,
		Summary: "Hike", ImageCover: "tour-1-cover.jpg",
	}
	tours.EXPECT().GetByID(mock.Anything, "t1").Return(existing, nil)

	_, err := svc.Update(context.Background(), "t1", domain.TourInput{PriceDiscount: ptr(400.0)})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTourService_Get_PopulatesReviews(t *testing.T) {
	svc, tours, reviews, _ := newTourService(t)

	tours.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Tour{ID: "t1"}, nil)
	reviews.EXPECT().ListByTour(mock.Anything, "t1").Return([]*domain.Review{{ID: "r1"}, {ID: "r2"}}, nil)

	tour, err := svc.Get(context.Background(), "t1")

	require.NoError(t, err)
	assert.Len(t, tour.Reviews, 2)
}

func TestTourService_GetBySlug_NotFound(t *testing.T) {
	svc, tours, _, _ := newTourService(t)

	tours.EXPECT().GetBySlug(mock.Anything, "nope").Return(nil, domain.ErrTourNotFound)

	_, err := svc.GetBySlug(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrTourNotFound)
}

func TestTourService_Stats(t *testing.T) {
	svc, tours, _, _ := newTourService(t)

	tours.EXPECT().Stats(mock.Anything, 4.5).Return([]*domain.TourStats{
		{Difficulty: "easy", NumTours: 4, AvgRating: 4.7333333},
		{Difficulty: "difficult", NumTours: 2, AvgRating: 4.75},
	}, nil)

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "EASY", stats[0].Difficulty)
	assert.Equal(t, 4.7, stats[0].AvgRating)
	assert.Equal(t, "DIFFICULT", stats[1].Difficulty)
}

func TestTourService_Within(t *testing.T) {
	svc, tours, _, _ := newTourService(t)

	tours.EXPECT().
		Within(mock.Anything, 34.1, -118.1, mock.MatchedBy(func(r float64) bool {
			return math.Abs(r-200/3963.2) < 1e-12
		})).
		Return([]*domain.Tour{{ID: "t1"}}, nil)

	got, err := svc.Within(context.Background(), 200, 34.1, -118.1, domain.UnitMiles)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestTourService_Distances(t *testing.T) {
	svc, tours, _, _ := newTourService(t)

	tours.EXPECT().Distances(mock.Anything, 34.1, -118.1, 0.001).
		Return([]*domain.TourDistance{{ID: "t1", Name: "The Sea Explorer", Distance: 12.5}}, nil)

	got, err := svc.Distances(context.Background(), 34.1, -118.1, domain.UnitKilometers)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 12.5, got[0].Distance)
}

func TestTourService_ListBooked(t *testing.T) {
	svc, tours, _, bookings := newTourService(t)

	bookings.EXPECT().ListByUser(mock.Anything, "u1").Return([]*domain.Booking{
		{ID: "b1", TourID: "t1"},
		{ID: "b2", TourID: "t3"},
	}, nil)
	tours.EXPECT().ListByIDs(mock.Anything, []string{"t1", "t3"}).Return([]*domain.Tour{{ID: "t1"}, {ID: "t3"}}, nil)

	got, err := svc.ListBooked(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestTourService_Delete_Error(t *testing.T) {
	svc, tours, _, _ := newTourService(t)

	tours.EXPECT().Delete(mock.Anything, "t1").Return(errors.New("db error"))

	err := svc.Delete(context.Background(), "t1")

	assert.Error(t, err)
}
