package domain

import (
	"strings"
	"time"
)

type Review struct {
	ID        string       `json:"id"`
	Review    string       `json:"review" validate:"required"`
	Rating    int          `json:"rating" validate:"required,min=1,max=5"`
	TourID    string       `json:"tour" validate:"required,uuid"`
	UserID    string       `json:"user" validate:"required,uuid"`
	User      *UserSummary `json:"-"`
	CreatedAt time.Time    `json:"createdAt"`
}

type ReviewInput struct {
	Review *string `json:"review"`
	Rating *int    `json:"rating"`
	Tour   *string `json:"tour"`
	User   *string `json:"user"`
}

func (in *ReviewInput) Apply(r *Review) {
	if in.Review != nil {
		r.Review = strings.TrimSpace(*in.Review)
	}
	if in.Rating != nil {
		r.Rating = *in.Rating
	}
	if in.Tour != nil {
		r.TourID = *in.Tour
	}
	if in.User != nil {
		r.UserID = *in.User
	}
}

// Content keeps only the text and the rating; tour and author are fixed once created.
func (in ReviewInput) Content() ReviewInput {
	return ReviewInput{Review: in.Review, Rating: in.Rating}
}
