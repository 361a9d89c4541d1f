package payment

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"time"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	sessionParam   = "session"
	checkoutIssuer = "natours-checkout"
)

type checkoutClaims struct {
	TourID string  `json:"tour"`
	UserID string  `json:"user"`
	Price  float64 `json:"price"`
	jwt.RegisteredClaims
}

// LocalGateway issues checkout sessions without a payment provider. The
// success URL carries a signed token that ConfirmCheckout turns back into
// booking data, so the tour, user and price cannot be altered by the client.
type LocalGateway struct {
	secret   []byte
	currency string
	ttl      time.Duration
	now      func() time.Time
}

func NewLocalGateway(secret, currency string, ttl time.Duration) *LocalGateway {
	return &LocalGateway{
		secret:   []byte(secret),
		currency: currency,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (g *LocalGateway) CreateCheckoutSession(_ context.Context, req domain.CheckoutRequest) (*domain.CheckoutSession, error) {
	if req.Tour == nil || req.User == nil {
		return nil, fmt.Errorf("checkout request needs a tour and a user")
	}

	success, err := url.Parse(req.SuccessURL)
	if err != nil {
		return nil, fmt.Errorf("parse success url: %w", err)
	}

	now := g.now()
	expires := now.Add(g.ttl)
	id := uuid.New().String()

	claims := checkoutClaims{
		TourID: req.Tour.ID,
		UserID: req.User.ID,
		Price:  req.Tour.Price,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Issuer:    checkoutIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return nil, fmt.Errorf("sign checkout token: %w", err)
	}

	q := success.Query()
	q.Set(sessionParam, token)
	success.RawQuery = q.Encode()

	origin := url.URL{Scheme: success.Scheme, Host: success.Host}
	item := domain.LineItem{
		Name:        req.Tour.Name + " Tour",
		Description: req.Tour.Summary,
		Amount:      int64(math.Round(req.Tour.Price * 100)),
		Currency:    g.currency,
		Quantity:    1,
	}
	if req.Tour.ImageCover != "" {
		item.Images = []string{origin.String() + "/static/img/tours/" + req.Tour.ImageCover}
	}

	return &domain.CheckoutSession{
		ID:                id,
		PaymentMethods:    []string{"card"},
		SuccessURL:        success.String(),
		CancelURL:         req.CancelURL,
		CustomerEmail:     req.User.Email,
		ClientReferenceID: req.Tour.ID,
		LineItems:         []domain.LineItem{item},
		ExpiresAt:         expires,
	}, nil
}

// ConfirmCheckout verifies a token from a success URL.
func (g *LocalGateway) ConfirmCheckout(_ context.Context, token string) (*domain.Checkout, error) {
	var claims checkoutClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return g.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(checkoutIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(g.now),
	)
	if err != nil {
		return nil, domain.ErrCheckoutInvalid
	}
	if claims.ID == "" || claims.TourID == "" || claims.UserID == "" {
		return nil, domain.ErrCheckoutInvalid
	}

	return &domain.Checkout{
		SessionID: claims.ID,
		TourID:    claims.TourID,
		UserID:    claims.UserID,
		Price:     claims.Price,
	}, nil
}
