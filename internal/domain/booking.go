package domain

import "time"

type Booking struct {
	ID        string       `json:"id"`
	TourID    string       `json:"tour" validate:"required,uuid"`
	UserID    string       `json:"user" validate:"required,uuid"`
	Price     float64      `json:"price" validate:"required,gt=0"`
	Paid      bool         `json:"paid"`
	Tour      *TourSummary `json:"-"`
	User      *UserSummary `json:"-"`
	CreatedAt time.Time    `json:"createdAt"`
}

// TourSummary is the populated form of a tour embedded in bookings.
type TourSummary struct {
	ID         string
	Name       string
	Slug       string
	StartDates []time.Time
}

type BookingInput struct {
	Tour  *string  `json:"tour"`
	User  *string  `json:"user"`
	Price *float64 `json:"price"`
	Paid  *bool    `json:"paid"`
}

func (in *BookingInput) Apply(b *Booking) {
	if in.Tour != nil {
		b.TourID = *in.Tour
	}
	if in.User != nil {
		b.UserID = *in.User
	}
	if in.Price != nil {
		b.Price = *in.Price
	}
	if in.Paid != nil {
		b.Paid = *in.Paid
	}
}

// CheckoutRequest describes a tour purchase started by a logged-in user.
type CheckoutRequest struct {
	Tour       *Tour
	User       *User
	SuccessURL string
	CancelURL  string
}

type LineItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Amount      int64    `json:"amount"`
	Currency    string   `json:"currency"`
	Quantity    int      `json:"quantity"`
}

type CheckoutSession struct {
	ID                string     `json:"id"`
	PaymentMethods    []string   `json:"payment_method_types"`
	SuccessURL        string     `json:"success_url"`
	CancelURL         string     `json:"cancel_url"`
	CustomerEmail     string     `json:"customer_email"`
	ClientReferenceID string     `json:"client_reference_id"`
	LineItems         []LineItem `json:"line_items"`
	ExpiresAt         time.Time  `json:"expires_at"`
}

// Checkout is the verified content of a completed checkout.
type Checkout struct {
	SessionID string
	TourID    string
	UserID    string
	Price     float64
}

type Invoice struct {
	Number        string
	IssuedAt      time.Time
	CustomerName  string
	CustomerEmail string
	TourName      string
	StartDates    []time.Time
	Price         float64
	Paid          bool
}
