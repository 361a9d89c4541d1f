package handler

import (
	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/daavo03/node-tours-app/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// GetAllReviews lists reviews, limited to one tour on /tours/:id/reviews.
func (h *Handler) GetAllReviews(c *ginext.Context) {
	GetAll[domain.Review](c, h.reviewService, h.query, dto.ToReviewResponse, ParamScope("id", "tour"))
}

func (h *Handler) GetReview(c *ginext.Context) {
	GetOne[domain.Review](c, h.reviewService, dto.ToReviewResponse)
}

func (h *Handler) CreateReview(c *ginext.Context) {
	CreateOne[domain.Review, domain.ReviewInput](c, h.reviewService, dto.ToReviewResponse, setReviewRefs)
}

func (h *Handler) UpdateReview(c *ginext.Context) {
	UpdateOne[domain.Review, domain.ReviewInput](c, h.reviewService, dto.ToReviewResponse)
}

func (h *Handler) DeleteReview(c *ginext.Context) {
	DeleteOne(c, h.reviewService)
}

// setReviewRefs takes the tour from the parent route when the body has none and
// always makes the current user the author.
func setReviewRefs(c *ginext.Context, in *domain.ReviewInput) error {
	if in.Tour == nil {
		if id := c.Param("id"); id != "" {
			in.Tour = &id
		}
	}

	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	in.User = &actor.ID
	return nil
}
