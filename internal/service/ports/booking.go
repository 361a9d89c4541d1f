package ports

import (
	"context"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/daavo03/node-tours-app/internal/query"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	List(ctx context.Context, q *query.Query) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id string) error
}

type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutSession, error)
	ConfirmCheckout(ctx context.Context, token string) (*domain.Checkout, error)
}
