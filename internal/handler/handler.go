package handler

import (
	"context"
	"io"
	"mime/multipart"
	"time"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/daavo03/node-tours-app/internal/query"
)

type TourSvc interface {
	List(ctx context.Context, q *query.Query) ([]*domain.Tour, error)
	Get(ctx context.Context, id string) (*domain.Tour, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tour, error)
	Create(ctx context.Context, in domain.TourInput) (*domain.Tour, error)
	Update(ctx context.Context, id string, in domain.TourInput) (*domain.Tour, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) ([]*domain.TourStats, error)
	MonthlyPlan(ctx context.Context, year int) ([]*domain.MonthlyPlan, error)
	Within(ctx context.Context, distance, lat, lng float64, unit domain.Unit) ([]*domain.Tour, error)
	Distances(ctx context.Context, lat, lng float64, unit domain.Unit) ([]*domain.TourDistance, error)
	ListBooked(ctx context.Context, userID string) ([]*domain.Tour, error)
}

type UserSvc interface {
	List(ctx context.Context, q *query.Query) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, in domain.UserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	UpdateMe(ctx context.Context, id string, in domain.UserInput) (*domain.User, error)
	DeleteMe(ctx context.Context, id string) error
}

type AuthSvc interface {
	Signup(ctx context.Context, in domain.SignupInput, accountURL string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	ForgotPassword(ctx context.Context, email string, resetURL func(token string) string) error
	ResetPassword(ctx context.Context, token string, in domain.PasswordInput) (*domain.User, string, error)
	UpdatePassword(ctx context.Context, userID, current string, in domain.PasswordInput) (*domain.User, string, error)
}

type ReviewSvc interface {
	List(ctx context.Context, q *query.Query) ([]*domain.Review, error)
	Get(ctx context.Context, id string) (*domain.Review, error)
	Create(ctx context.Context, in domain.ReviewInput) (*domain.Review, error)
	Update(ctx context.Context, id string, in domain.ReviewInput) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
}

type BookingSvc interface {
	List(ctx context.Context, q *query.Query) ([]*domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	Create(ctx context.Context, in domain.BookingInput) (*domain.Booking, error)
	Update(ctx context.Context, id string, in domain.BookingInput) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
	CheckoutSession(ctx context.Context, tourID string, user *domain.User, baseURL string) (*domain.CheckoutSession, error)
	CompleteCheckout(ctx context.Context, token string) (*domain.Booking, error)
	Invoice(ctx context.Context, id string) (*domain.Invoice, error)
}

// Uploader stores an uploaded image under dir and returns the stored file name.
type Uploader interface {
	SaveImage(fh *multipart.FileHeader, dir, name string) (string, error)
}

type InvoiceRenderer interface {
	Render(w io.Writer, inv *domain.Invoice) error
}

type Config struct {
	Production bool
	CookieTTL  time.Duration
}

type Handler struct {
	tourService    TourSvc
	userService    UserSvc
	authService    AuthSvc
	reviewService  ReviewSvc
	bookingService BookingSvc
	uploader       Uploader
	invoices       InvoiceRenderer
	cfg            Config

	tourQuery *query.Parser
	query     *query.Parser
	now       func() time.Time
}

func NewHandler(
	tourService TourSvc,
	userService UserSvc,
	authService AuthSvc,
	reviewService ReviewSvc,
	bookingService BookingSvc,
	uploader Uploader,
	invoices InvoiceRenderer,
	cfg Config,
) *Handler {
	return &Handler{
		tourService:    tourService,
		userService:    userService,
		authService:    authService,
		reviewService:  reviewService,
		bookingService: bookingService,
		uploader:       uploader,
		invoices:       invoices,
		cfg:            cfg,
		tourQuery: query.NewParser(
			"duration", "ratingsQuantity", "ratingsAverage", "maxGroupSize", "difficulty", "price",
		),
		query: query.NewParser(),
		now:   time.Now,
	}
}
