package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/daavo03/node-tours-app/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

const (
	tourUID = "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"
	userUID = "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed"
	adminID = "6ec0bd7f-11c0-43da-975e-2a8ad9ebae0b"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingDeps struct {
	bookings *mocks.MockBookingRepo
	tours    *mocks.MockTourRepo
	users    *mocks.MockUserRepo
	gateway  *mocks.MockPaymentGateway
	notifier *mocks.MockBookingNotifier
}

func newBookingService(t *testing.T) (*BookingService, bookingDeps) {
	t.Helper()
	d := bookingDeps{
		bookings: mocks.NewMockBookingRepo(t),
		tours:    mocks.NewMockTourRepo(t),
		users:    mocks.NewMockUserRepo(t),
		gateway:  mocks.NewMockPaymentGateway(t),
		notifier: mocks.NewMockBookingNotifier(t),
	}
	svc := NewBookingService(d.bookings, d.tours, d.users, d.gateway, d.notifier, newTestLogger(t))
	return svc, d
}

func TestBookingService_Create(t *testing.T) {
	svc, d := newBookingService(t)

	tour := &domain.Tour{ID: tourUID, Name: "The Forest Hiker", Slug: "the-forest-hiker"}
	user := &domain.User{ID: userUID, Name: "Laura Wilson", Email: "laura@example.com"}

	d.tours.EXPECT().GetByID(mock.Anything, tourUID).Return(tour, nil)
	d.users.EXPECT().GetByID(mock.Anything, userUID).Return(user, nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, tour, user).Return()

	tid, uid, price := tourUID, userUID, 497.0
	b, err := svc.Create(context.Background(), domain.BookingInput{Tour: &tid, User: &uid, Price: &price})

	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.True(t, b.Paid)
	assert.Equal(t, 497.0, b.Price)
	require.NotNil(t, b.Tour)
	assert.Equal(t, "the-forest-hiker", b.Tour.Slug)
	require.NotNil(t, b.User)
	assert.Equal(t, "laura@example.com", b.User.Email)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_Invalid(t *testing.T) {
	svc, _ := newBookingService(t)

	tid := "not-a-uuid"
	_, err := svc.Create(context.Background(), domain.BookingInput{Tour: &tid})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_TourNotFound(t *testing.T) {
	svc, d := newBookingService(t)

	d.tours.EXPECT().GetByID(mock.Anything, tourUID).Return(nil, domain.ErrNotFound)

	tid, uid, price := tourUID, userUID, 497.0
	_, err := svc.Create(context.Background(), domain.BookingInput{Tour: &tid, User: &uid, Price: &price})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingService_CheckoutSession(t *testing.T) {
	svc, d := newBookingService(t)

	tour := &domain.Tour{ID: tourUID, Name: "The Sea Explorer", Slug: "the-sea-explorer", Price: 497}
	user := &domain.User{ID: userUID, Email: "laura@example.com"}
	session := &domain.CheckoutSession{ID: "cs_1"}

	d.tours.EXPECT().GetByID(mock.Anything, tourUID).Return(tour, nil)
	d.gateway.EXPECT().
		CreateCheckoutSession(mock.Anything, domain.CheckoutRequest{
			Tour:       tour,
			User:       user,
			SuccessURL: "http://127.0.0.1:3000/",
			CancelURL:  "http://127.0.0.1:3000/tour/the-sea-explorer",
		}).
		Return(session, nil)

	got, err := svc.CheckoutSession(context.Background(), tourUID, user, "http://127.0.0.1:3000/")

	require.NoError(t, err)
	assert.Equal(t, "cs_1", got.ID)
}

func TestBookingService_CompleteCheckout(t *testing.T) {
	svc, d := newBookingService(t)

	sessionID := "3f9b1c1e-6a57-4d4e-9d0f-7f1c2b3a4d5e"
	tour := &domain.Tour{ID: tourUID, Name: "The Sea Explorer"}
	user := &domain.User{ID: userUID, Name: "Laura Wilson"}

	d.gateway.EXPECT().ConfirmCheckout(mock.Anything, "signed").
		Return(&domain.Checkout{SessionID: sessionID, TourID: tourUID, UserID: userUID, Price: 497}, nil)
	d.tours.EXPECT().GetByID(mock.Anything, tourUID).Return(tour, nil)
	d.users.EXPECT().GetByID(mock.Anything, userUID).Return(user, nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.ID == sessionID && b.Paid && b.Price == 497
	})).Return(nil)
	d.notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, tour, user).Return()

	b, err := svc.CompleteCheckout(context.Background(), "signed")

	require.NoError(t, err)
	assert.Equal(t, sessionID, b.ID)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_CompleteCheckout_AlreadyCompleted(t *testing.T) {
	svc, d := newBookingService(t)

	sessionID := "3f9b1c1e-6a57-4d4e-9d0f-7f1c2b3a4d5e"
	existing := &domain.Booking{ID: sessionID, TourID: tourUID, UserID: userUID, Price: 497, Paid: true}

	d.gateway.EXPECT().ConfirmCheckout(mock.Anything, "signed").
		Return(&domain.Checkout{SessionID: sessionID, TourID: tourUID, UserID: userUID, Price: 497}, nil)
	d.tours.EXPECT().GetByID(mock.Anything, tourUID).Return(&domain.Tour{ID: tourUID}, nil)
	d.users.EXPECT().GetByID(mock.Anything, userUID).Return(&domain.User{ID: userUID}, nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.Anything).
		Return(&domain.DuplicateError{Value: sessionID})
	d.bookings.EXPECT().GetByID(mock.Anything, sessionID).Return(existing, nil)

	b, err := svc.CompleteCheckout(context.Background(), "signed")

	require.NoError(t, err)
	assert.Same(t, existing, b)
}

func TestBookingService_CompleteCheckout_InvalidToken(t *testing.T) {
	svc, d := newBookingService(t)

	d.gateway.EXPECT().ConfirmCheckout(mock.Anything, "forged").Return(nil, domain.ErrCheckoutInvalid)

	_, err := svc.CompleteCheckout(context.Background(), "forged")

	assert.ErrorIs(t, err, domain.ErrCheckoutInvalid)
}

func TestBookingService_Invoice(t *testing.T) {
	start := time.Date(2026, 6, 19, 9, 0, 0, 0, time.UTC)
	booking := &domain.Booking{
		ID:        "3f9b1c1e-6a57-4d4e-9d0f-7f1c2b3a4d5e",
		TourID:    tourUID,
		UserID:    userUID,
		Price:     497,
		Paid:      true,
		Tour:      &domain.TourSummary{ID: tourUID, Name: "The Sea Explorer", StartDates: []time.Time{start}},
		User:      &domain.UserSummary{ID: userUID, Name: "Laura Wilson", Email: "laura@example.com"},
		CreatedAt: start.AddDate(0, -1, 0),
	}

	tests := []struct {
		name    string
		actor   *domain.User
		wantErr error
	}{
		{name: "owner", actor: &domain.User{ID: userUID, Role: domain.RoleUser}},
		{name: "admin", actor: &domain.User{ID: adminID, Role: domain.RoleAdmin}},
		{name: "other user", actor: &domain.User{ID: adminID, Role: domain.RoleUser}, wantErr: domain.ErrForbidden},
		{name: "anonymous", wantErr: domain.ErrNotLoggedIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newBookingService(t)
			d.bookings.EXPECT().GetByID(mock.Anything, booking.ID).Return(booking, nil)

			ctx := context.Background()
			if tt.actor != nil {
				ctx = domain.ContextWithUser(ctx, tt.actor)
			}

			inv, err := svc.Invoice(ctx, booking.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "INV-3F9B1C1E", inv.Number)
			assert.Equal(t, "Laura Wilson", inv.CustomerName)
			assert.Equal(t, "The Sea Explorer", inv.TourName)
			assert.Equal(t, []time.Time{start}, inv.StartDates)
			assert.True(t, inv.Paid)
		})
	}
}

func TestBookingService_Delete_NotFound(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookings.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrNotFound)

	err := svc.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingService_Update(t *testing.T) {
	svc, d := newBookingService(t)

	existing := &domain.Booking{ID: "b1", TourID: tourUID, UserID: userUID, Price: 497, Paid: true}
	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(existing, nil).Twice()
	d.tours.EXPECT().GetByID(mock.Anything, tourUID).Return(&domain.Tour{ID: tourUID}, nil)
	d.bookings.EXPECT().Update(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Price == 397 && b.TourID == tourUID
	})).Return(nil)

	tid, price := tourUID, 397.0
	got, err := svc.Update(context.Background(), "b1", domain.BookingInput{Tour: &tid, Price: &price})

	require.NoError(t, err)
	assert.Equal(t, 397.0, got.Price)
	d.users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestBookingService_Update_UnknownReference(t *testing.T) {
	const otherUID = "9b2e4c1a-3d5f-4e6a-8b7c-1d2e3f4a5b6c"

	t.Run("tour", func(t *testing.T) {
		svc, d := newBookingService(t)

		existing := &domain.Booking{ID: "b1", TourID: tourUID, UserID: userUID, Price: 497, Paid: true}
		d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(existing, nil)
		d.tours.EXPECT().GetByID(mock.Anything, otherUID).Return(nil, domain.ErrNotFound)

		tid := otherUID
		_, err := svc.Update(context.Background(), "b1", domain.BookingInput{Tour: &tid})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		d.bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("user", func(t *testing.T) {
		svc, d := newBookingService(t)

		existing := &domain.Booking{ID: "b1", TourID: tourUID, UserID: userUID, Price: 497, Paid: true}
		d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(existing, nil)
		d.users.EXPECT().GetByID(mock.Anything, otherUID).Return(nil, domain.ErrNotFound)

		uid := otherUID
		_, err := svc.Update(context.Background(), "b1", domain.BookingInput{User: &uid})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		d.bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestBookingService_Update_RepoError(t *testing.T) {
	svc, d := newBookingService(t)

	existing := &domain.Booking{ID: "b1", TourID: tourUID, UserID: userUID, Price: 497, Paid: true}
	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(existing, nil)
	d.bookings.EXPECT().Update(mock.Anything, existing).Return(errors.New("db down"))

	paid := false
	_, err := svc.Update(context.Background(), "b1", domain.BookingInput{Paid: &paid})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "update booking")
}
