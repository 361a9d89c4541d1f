package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/daavo03/node-tours-app/internal/query"
	"github.com/daavo03/node-tours-app/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	tourRepo    ports.TourRepo
	userRepo    ports.UserRepo
	gateway     ports.PaymentGateway
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	tourRepo ports.TourRepo,
	userRepo ports.UserRepo,
	gateway ports.PaymentGateway,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		tourRepo:    tourRepo,
		userRepo:    userRepo,
		gateway:     gateway,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *BookingService) List(ctx context.Context, q *query.Query) ([]*domain.Booking, error) {
	return s.bookingRepo.List(ctx, q)
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

func (s *BookingService) Create(ctx context.Context, in domain.BookingInput) (*domain.Booking, error) {
	b := &domain.Booking{
		ID:        uuid.New().String(),
		Paid:      true,
		CreatedAt: time.Now().UTC(),
	}
	in.Apply(b)

	return s.create(ctx, b)
}

func (s *BookingService) Update(ctx context.Context, id string, in domain.BookingInput) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	in.Apply(b)
	if err = domain.Validate(b); err != nil {
		return nil, err
	}

	if in.Tour != nil {
		if _, err = s.tourRepo.GetByID(ctx, b.TourID); err != nil {
			return nil, fmt.Errorf("check tour: %w", err)
		}
	}
	if in.User != nil {
		if _, err = s.userRepo.GetByID(ctx, b.UserID); err != nil {
			return nil, fmt.Errorf("check user: %w", err)
		}
	}

	if err = s.bookingRepo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	return nil
}

// CheckoutSession opens a payment session for the tour. baseURL is the public
// origin the customer returns to.
func (s *BookingService) CheckoutSession(ctx context.Context, tourID string, user *domain.User, baseURL string) (*domain.CheckoutSession, error) {
	tour, err := s.tourRepo.GetByID(ctx, tourID)
	if err != nil {
		return nil, fmt.Errorf("get tour: %w", err)
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	session, err := s.gateway.CreateCheckoutSession(ctx, domain.CheckoutRequest{
		Tour:       tour,
		User:       user,
		SuccessURL: baseURL + "/",
		CancelURL:  baseURL + "/tour/" + tour.Slug,
	})
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	s.logger.Info("checkout session created",
		logger.String("session_id", session.ID),
		logger.String("tour_id", tour.ID),
		logger.String("user_id", user.ID),
	)
	return session, nil
}

// CompleteCheckout turns a verified checkout token into a booking. Completing
// the same session twice returns the booking created the first time.
func (s *BookingService) CompleteCheckout(ctx context.Context, token string) (*domain.Booking, error) {
	checkout, err := s.gateway.ConfirmCheckout(ctx, token)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		ID:        checkout.SessionID,
		TourID:    checkout.TourID,
		UserID:    checkout.UserID,
		Price:     checkout.Price,
		Paid:      true,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.create(ctx, b)
	if errors.Is(err, domain.ErrDuplicate) {
		return s.bookingRepo.GetByID(ctx, b.ID)
	}
	return created, err
}

// Invoice builds invoice data for the booking. Only its owner and staff may see it.
func (s *BookingService) Invoice(ctx context.Context, id string) (*domain.Invoice, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	actor, ok := domain.UserFromContext(ctx)
	if !ok {
		return nil, domain.ErrNotLoggedIn
	}
	if b.UserID != actor.ID && !actor.HasRole(domain.RoleAdmin, domain.RoleLeadGuide) {
		return nil, domain.ErrForbidden
	}

	inv := &domain.Invoice{
		Number:   "INV-" + strings.ToUpper(b.ID[:min(8, len(b.ID))]),
		IssuedAt: b.CreatedAt,
		Price:    b.Price,
		Paid:     b.Paid,
	}
	if b.User != nil {
		inv.CustomerName = b.User.Name
		inv.CustomerEmail = b.User.Email
	}
	if b.Tour != nil {
		inv.TourName = b.Tour.Name
		inv.StartDates = b.Tour.StartDates
	}
	return inv, nil
}

func (s *BookingService) create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if err := domain.Validate(b); err != nil {
		return nil, err
	}

	tour, err := s.tourRepo.GetByID(ctx, b.TourID)
	if err != nil {
		return nil, fmt.Errorf("check tour: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, b.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	if err = s.bookingRepo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", b.ID),
		logger.String("tour_id", b.TourID),
		logger.String("user_id", b.UserID),
	)

	b.Tour = &domain.TourSummary{ID: tour.ID, Name: tour.Name, Slug: tour.Slug, StartDates: tour.StartDates}
	b.User = &domain.UserSummary{ID: user.ID, Name: user.Name, Email: user.Email}

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), b, tour, user)

	return b, nil
}
