package ports

import (
	"context"

	"github.com/daavo03/node-tours-app/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, booking *domain.Booking, tour *domain.Tour, user *domain.User)
}

type Mailer interface {
	SendWelcome(ctx context.Context, user *domain.User, url string) error
	SendPasswordReset(ctx context.Context, user *domain.User, url string) error
}
