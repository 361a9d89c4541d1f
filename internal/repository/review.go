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

const reviewSelect = `SELECT r.id, r.review, r.rating, r.tour_id, r.user_id, r.created_at,
	u.name AS user_name, u.photo AS user_photo
	FROM reviews r
	JOIN users u ON u.id = r.user_id`

// recalcRatings refreshes the rating aggregates of tour $1 from its reviews.
const recalcRatings = `UPDATE tours SET
		ratings_quantity = s.n,
		ratings_average = CASE WHEN s.n = 0 THEN 4.5 ELSE ROUND(s.avg::numeric, 1)::float8 END
	FROM (SELECT COUNT(*) AS n, COALESCE(AVG(rating), 0) AS avg FROM reviews WHERE tour_id = $1) s
	WHERE tours.id = $1`

var ReviewSchema = &query.Schema{
	Columns: map[string]query.Column{
		"id":        {Name: "r.id", Kind: query.UUID},
		"review":    {Name: "r.review", Kind: query.String},
		"rating":    {Name: "r.rating", Kind: query.Integer},
		"tour":      {Name: "r.tour_id", Kind: query.UUID},
		"user":      {Name: "r.user_id", Kind: query.UUID},
		"createdAt": {Name: "r.created_at", Kind: query.Time},
	},
	DefaultSort: "-createdAt",
	IDColumn:    "r.id",
}

type reviewRow struct {
	ID        string    `db:"id"`
	Review    string    `db:"review"`
	Rating    int       `db:"rating"`
	TourID    string    `db:"tour_id"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	UserName  string    `db:"user_name"`
	UserPhoto string    `db:"user_photo"`
}

func (r *reviewRow) toDomain() *domain.Review {
	return &domain.Review{
		ID:        r.ID,
		Review:    r.Review,
		Rating:    r.Rating,
		TourID:    r.TourID,
		UserID:    r.UserID,
		User:      &domain.UserSummary{ID: r.UserID, Name: r.UserName, Photo: r.UserPhoto},
		CreatedAt: r.CreatedAt,
	}
}

type ReviewRepository struct {
	db       *dbpg.DB
	dbx      *sqlx.DB
	strategy retry.Strategy
}

func NewReviewRepo(db *dbpg.DB) *ReviewRepository {
	return &ReviewRepository{
		db:       db,
		dbx:      sqlx.NewDb(db.Master, "postgres"),
		strategy: defaultStrategy(),
	}
}

func (r *ReviewRepository) List(ctx context.Context, q *query.Query) ([]*domain.Review, error) {
	clause, err := ReviewSchema.Build(q)
	if err != nil {
		return nil, err
	}

	stmt, args := clause.SQL(reviewSelect, []string{"u.active"})
	return r.selectReviews(ctx, stmt, args...)
}

func (r *ReviewRepository) ListByTour(ctx context.Context, tourID string) ([]*domain.Review, error) {
	stmt := reviewSelect + ` WHERE r.tour_id = $1 AND u.active ORDER BY r.created_at DESC, r.id`
	return r.selectReviews(ctx, stmt, tourID)
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	var row reviewRow
	if err := r.dbx.GetContext(ctx, &row, reviewSelect+` WHERE r.id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return row.toDomain(), nil
}

// Create inserts the review and refreshes the tour ratings in one transaction.
func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt := `INSERT INTO reviews (id, review, rating, tour_id, user_id, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err = tx.ExecContext(ctx, stmt, rv.ID, rv.Review, rv.Rating, rv.TourID, rv.UserID, rv.CreatedAt); err != nil {
		if dup, ok := duplicateError(err); ok {
			return dup
		}
		return fmt.Errorf("insert review: %w", err)
	}

	if _, err = tx.ExecContext(ctx, recalcRatings, rv.TourID); err != nil {
		return fmt.Errorf("recalc ratings: %w", err)
	}

	return tx.Commit()
}

func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `UPDATE reviews SET review = $2, rating = $3 WHERE id = $1`,
		rv.ID, rv.Review, rv.Rating)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	if err = requireAffected(res); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, recalcRatings, rv.TourID); err != nil {
		return fmt.Errorf("recalc ratings: %w", err)
	}

	return tx.Commit()
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var tourID string
	err = tx.QueryRowContext(ctx, `DELETE FROM reviews WHERE id = $1 RETURNING tour_id`, id).Scan(&tourID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete review: %w", err)
	}

	if _, err = tx.ExecContext(ctx, recalcRatings, tourID); err != nil {
		return fmt.Errorf("recalc ratings: %w", err)
	}

	return tx.Commit()
}

func (r *ReviewRepository) selectReviews(ctx context.Context, stmt string, args ...any) ([]*domain.Review, error) {
	var rows []reviewRow
	if err := r.dbx.SelectContext(ctx, &rows, stmt, args...); err != nil {
		return nil, fmt.Errorf("select reviews: %w", err)
	}

	res := make([]*domain.Review, 0, len(rows))
	for i := range rows {
		res = append(res, rows[i].toDomain())
	}
	return res, nil
}
