package payment

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "checkout-secret-that-is-long-enough!"

func checkoutRequest() domain.CheckoutRequest {
	return domain.CheckoutRequest{
		Tour: &domain.Tour{
			ID:         "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d",
			Name:       "The Sea Explorer",
			Summary:    "Exploring the jaw-dropping US east coast by foot and by boat",
			Price:      497.5,
			ImageCover: "tour-2-cover.jpg",
		},
		User:       &domain.User{ID: "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed", Email: "jonas@example.com"},
		SuccessURL: "https://natours.dev/",
		CancelURL:  "https://natours.dev/tour/the-sea-explorer",
	}
}

func sessionToken(t *testing.T, s *domain.CheckoutSession) string {
	t.Helper()
	u, err := url.Parse(s.SuccessURL)
	require.NoError(t, err)
	token := u.Query().Get("session")
	require.NotEmpty(t, token)
	return token
}

func TestLocalGateway_CreateCheckoutSession(t *testing.T) {
	now := time.Date(2021, 4, 25, 10, 0, 0, 0, time.UTC)
	g := NewLocalGateway(secret, "usd", 30*time.Minute)
	g.now = func() time.Time { return now }

	s, err := g.CreateCheckoutSession(context.Background(), checkoutRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, []string{"card"}, s.PaymentMethods)
	assert.Equal(t, "jonas@example.com", s.CustomerEmail)
	assert.Equal(t, "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d", s.ClientReferenceID)
	assert.Equal(t, "https://natours.dev/tour/the-sea-explorer", s.CancelURL)
	assert.Equal(t, now.Add(30*time.Minute), s.ExpiresAt)

	require.Len(t, s.LineItems, 1)
	item := s.LineItems[0]
	assert.Equal(t, "The Sea Explorer Tour", item.Name)
	assert.Equal(t, int64(49750), item.Amount)
	assert.Equal(t, "usd", item.Currency)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, []string{"https://natours.dev/static/img/tours/tour-2-cover.jpg"}, item.Images)
}

func TestLocalGateway_ConfirmCheckout(t *testing.T) {
	g := NewLocalGateway(secret, "usd", 30*time.Minute)

	s, err := g.CreateCheckoutSession(context.Background(), checkoutRequest())
	require.NoError(t, err)

	c, err := g.ConfirmCheckout(context.Background(), sessionToken(t, s))
	require.NoError(t, err)

	assert.Equal(t, &domain.Checkout{
		SessionID: s.ID,
		TourID:    "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d",
		UserID:    "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed",
		Price:     497.5,
	}, c)
}

func TestLocalGateway_ConfirmCheckout_Rejects(t *testing.T) {
	issued := time.Date(2021, 4, 25, 10, 0, 0, 0, time.UTC)
	g := NewLocalGateway(secret, "usd", 30*time.Minute)
	g.now = func() time.Time { return issued }

	s, err := g.CreateCheckoutSession(context.Background(), checkoutRequest())
	require.NoError(t, err)
	token := sessionToken(t, s)

	t.Run("expired", func(t *testing.T) {
		late := NewLocalGateway(secret, "usd", 30*time.Minute)
		late.now = func() time.Time { return issued.Add(31 * time.Minute) }

		_, err := late.ConfirmCheckout(context.Background(), token)
		assert.ErrorIs(t, err, domain.ErrCheckoutInvalid)
	})

	t.Run("other secret", func(t *testing.T) {
		other := NewLocalGateway("a-completely-different-secret-value", "usd", 30*time.Minute)
		other.now = g.now

		_, err := other.ConfirmCheckout(context.Background(), token)
		assert.ErrorIs(t, err, domain.ErrCheckoutInvalid)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := g.ConfirmCheckout(context.Background(), "tour=1&user=2&price=3")
		assert.ErrorIs(t, err, domain.ErrCheckoutInvalid)
	})
}

func TestLocalGateway_CreateCheckoutSession_NeedsUser(t *testing.T) {
	g := NewLocalGateway(secret, "usd", time.Minute)
	req := checkoutRequest()
	req.User = nil

	_, err := g.CreateCheckoutSession(context.Background(), req)
	assert.Error(t, err)
}
