package dto

import (
	"time"

	"github.com/daavo03/node-tours-app/internal/domain"
)

type TourResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Slug            string            `json:"slug"`
	Duration        int               `json:"duration"`
	DurationWeeks   float64           `json:"durationWeeks"`
	MaxGroupSize    int               `json:"maxGroupSize"`
	Difficulty      domain.Difficulty `json:"difficulty"`
	RatingsAverage  float64           `json:"ratingsAverage"`
	RatingsQuantity int               `json:"ratingsQuantity"`
	Price           float64           `json:"price"`
	PriceDiscount   *float64          `json:"priceDiscount,omitempty"`
	Summary         string            `json:"summary"`
	Description     string            `json:"description,omitempty"`
	ImageCover      string            `json:"imageCover"`
	Images          []string          `json:"images"`
	StartDates      []time.Time       `json:"startDates"`
	SecretTour      bool              `json:"secretTour"`
	StartLocation   *domain.GeoPoint  `json:"startLocation,omitempty"`
	Locations       []domain.GeoPoint `json:"locations"`
	Guides          []UserRef         `json:"guides"`
	Reviews         []ReviewResponse  `json:"reviews,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
}

type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Photo string `json:"photo,omitempty"`
	Role  string `json:"role,omitempty"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Photo     string    `json:"photo"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	Review    string    `json:"review"`
	Rating    int       `json:"rating"`
	Tour      string    `json:"tour"`
	User      UserRef   `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

type TourRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type BookingResponse struct {
	ID        string    `json:"id"`
	Tour      TourRef   `json:"tour"`
	User      UserRef   `json:"user"`
	Price     float64   `json:"price"`
	Paid      bool      `json:"paid"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToTourResponse(t *domain.Tour) TourResponse {
	resp := TourResponse{
		ID:              t.ID,
		Name:            t.Name,
		Slug:            t.Slug,
		Duration:        t.Duration,
		DurationWeeks:   t.DurationWeeks(),
		MaxGroupSize:    t.MaxGroupSize,
		Difficulty:      t.Difficulty,
		RatingsAverage:  t.RatingsAverage,
		RatingsQuantity: t.RatingsQuantity,
		Price:           t.Price,
		PriceDiscount:   t.PriceDiscount,
		Summary:         t.Summary,
		Description:     t.Description,
		ImageCover:      t.ImageCover,
		Images:          nonNil(t.Images),
		StartDates:      nonNil(t.StartDates),
		SecretTour:      t.SecretTour,
		StartLocation:   t.StartLocation,
		Locations:       nonNil(t.Locations),
		Guides:          make([]UserRef, 0, len(t.Guides)),
		CreatedAt:       t.CreatedAt,
	}

	for _, g := range t.Guides {
		resp.Guides = append(resp.Guides, UserRef{
			ID:    g.ID,
			Name:  g.Name,
			Email: g.Email,
			Photo: g.Photo,
			Role:  string(g.Role),
		})
	}

	if t.Reviews != nil {
		resp.Reviews = make([]ReviewResponse, 0, len(t.Reviews))
		for _, r := range t.Reviews {
			resp.Reviews = append(resp.Reviews, ToReviewResponse(r))
		}
	}

	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Photo:     u.Photo,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func ToReviewResponse(r *domain.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:        r.ID,
		Review:    r.Review,
		Rating:    r.Rating,
		Tour:      r.TourID,
		User:      UserRef{ID: r.UserID},
		CreatedAt: r.CreatedAt,
	}
	if r.User != nil {
		resp.User.Name = r.User.Name
		resp.User.Photo = r.User.Photo
	}
	return resp
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:        b.ID,
		Tour:      TourRef{ID: b.TourID},
		User:      UserRef{ID: b.UserID},
		Price:     b.Price,
		Paid:      b.Paid,
		CreatedAt: b.CreatedAt,
	}
	if b.Tour != nil {
		resp.Tour.Name = b.Tour.Name
		resp.Tour.Slug = b.Tour.Slug
	}
	if b.User != nil {
		resp.User.Name = b.User.Name
		resp.User.Email = b.User.Email
	}
	return resp
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
