package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/daavo03/node-tours-app/internal/query"
	"github.com/jmoiron/sqlx"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingSelect = `SELECT b.id, b.tour_id, b.user_id, b.price, b.paid, b.created_at,
	t.name AS tour_name, t.slug AS tour_slug, t.start_dates AS tour_start_dates,
	u.name AS user_name, u.email AS user_email
	FROM bookings b
	JOIN tours t ON t.id = b.tour_id
	JOIN users u ON u.id = b.user_id`

var BookingSchema = &query.Schema{
	Columns: map[string]query.Column{
		"id":        {Name: "b.id", Kind: query.UUID},
		"tour":      {Name: "b.tour_id", Kind: query.UUID},
		"user":      {Name: "b.user_id", Kind: query.UUID},
		"price":     {Name: "b.price", Kind: query.Number},
		"paid":      {Name: "b.paid", Kind: query.Bool},
		"createdAt": {Name: "b.created_at", Kind: query.Time},
	},
	DefaultSort: "-createdAt",
	IDColumn:    "b.id",
}

type bookingRow struct {
	ID             string                  `db:"id"`
	TourID         string                  `db:"tour_id"`
	UserID         string                  `db:"user_id"`
	Price          float64                 `db:"price"`
	Paid           bool                    `db:"paid"`
	CreatedAt      time.Time               `db:"created_at"`
	TourName       string                  `db:"tour_name"`
	TourSlug       string                  `db:"tour_slug"`
	TourStartDates jsonColumn[[]time.Time] `db:"tour_start_dates"`
	UserName       string                  `db:"user_name"`
	UserEmail      string                  `db:"user_email"`
}

func (r *bookingRow) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:        r.ID,
		TourID:    r.TourID,
		UserID:    r.UserID,
		Price:     r.Price,
		Paid:      r.Paid,
		CreatedAt: r.CreatedAt,
		Tour: &domain.TourSummary{
			ID:         r.TourID,
			Name:       r.TourName,
			Slug:       r.TourSlug,
			StartDates: r.TourStartDates.V,
		},
		User: &domain.UserSummary{ID: r.UserID, Name: r.UserName, Email: r.UserEmail},
	}
}

type BookingRepository struct {
	db       *dbpg.DB
	dbx      *sqlx.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		dbx:      sqlx.NewDb(db.Master, "postgres"),
		strategy: defaultStrategy(),
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	stmt := `INSERT INTO bookings (id, tour_id, user_id, price, paid, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecWithRetry(ctx, r.strategy, stmt, b.ID, b.TourID, b.UserID, b.Price, b.Paid, b.CreatedAt)
	if err != nil {
		if dup, ok := duplicateError(err); ok {
			return dup
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) List(ctx context.Context, q *query.Query) ([]*domain.Booking, error) {
	clause, err := BookingSchema.Build(q)
	if err != nil {
		return nil, err
	}

	stmt, args := clause.SQL(bookingSelect, nil)
	return r.selectBookings(ctx, stmt, args...)
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	stmt := bookingSelect + ` WHERE b.user_id = $1 ORDER BY b.created_at DESC, b.id`
	return r.selectBookings(ctx, stmt, userID)
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var row bookingRow
	if err := r.dbx.GetContext(ctx, &row, bookingSelect+` WHERE b.id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return row.toDomain(), nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	stmt := `UPDATE bookings SET tour_id = $2, user_id = $3, price = $4, paid = $5 WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, stmt, b.ID, b.TourID, b.UserID, b.Price, b.Paid)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	return requireAffected(res)
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	return requireAffected(res)
}

func (r *BookingRepository) selectBookings(ctx context.Context, stmt string, args ...any) ([]*domain.Booking, error) {
	var rows []bookingRow
	if err := r.dbx.SelectContext(ctx, &rows, stmt, args...); err != nil {
		return nil, fmt.Errorf("select bookings: %w", err)
	}

	res := make([]*domain.Booking, 0, len(rows))
	for i := range rows {
		res = append(res, rows[i].toDomain())
	}
	return res, nil
}
