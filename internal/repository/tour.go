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
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const earthRadiusMeters = 6378100

const tourColumns = `t.id, t.name, t.slug, t.duration, t.max_group_size, t.difficulty,
	t.ratings_average, t.ratings_quantity, t.price, t.price_discount, t.summary,
	t.description, t.image_cover, t.images, t.start_dates, t.secret_tour,
	t.start_location, t.locations, t.guides, t.created_at`

// distance from ($1 lat, $2 lng) to the tour start, in radians
const centralAngle = `central_angle($1, $2,
	(t.start_location->'coordinates'->>1)::float8,
	(t.start_location->'coordinates'->>0)::float8)`

var TourSchema = &query.Schema{
	Columns: map[string]query.Column{
		"id":              {Name: "t.id", Kind: query.UUID},
		"name":            {Name: "t.name", Kind: query.String},
		"slug":            {Name: "t.slug", Kind: query.String},
		"duration":        {Name: "t.duration", Kind: query.Integer},
		"maxGroupSize":    {Name: "t.max_group_size", Kind: query.Integer},
		"difficulty":      {Name: "t.difficulty", Kind: query.String},
		"ratingsAverage":  {Name: "t.ratings_average", Kind: query.Number},
		"ratingsQuantity": {Name: "t.ratings_quantity", Kind: query.Integer},
		"price":           {Name: "t.price", Kind: query.Number},
		"priceDiscount":   {Name: "t.price_discount", Kind: query.Number},
		"summary":         {Name: "t.summary", Kind: query.String},
		"createdAt":       {Name: "t.created_at", Kind: query.Time},
	},
	DefaultSort: "-createdAt",
	IDColumn:    "t.id",
}

type tourRow struct {
	ID              string                        `db:"id"`
	Name            string                        `db:"name"`
	Slug            string                        `db:"slug"`
	Duration        int                           `db:"duration"`
	MaxGroupSize    int                           `db:"max_group_size"`
	Difficulty      string                        `db:"difficulty"`
	RatingsAverage  float64                       `db:"ratings_average"`
	RatingsQuantity int                           `db:"ratings_quantity"`
	Price           float64                       `db:"price"`
	PriceDiscount   sql.NullFloat64               `db:"price_discount"`
	Summary         string                        `db:"summary"`
	Description     string                        `db:"description"`
	ImageCover      string                        `db:"image_cover"`
	Images          pq.StringArray                `db:"images"`
	StartDates      jsonColumn[[]time.Time]       `db:"start_dates"`
	SecretTour      bool                          `db:"secret_tour"`
	StartLocation   jsonColumn[*domain.GeoPoint]  `db:"start_location"`
	Locations       jsonColumn[[]domain.GeoPoint] `db:"locations"`
	Guides          pq.StringArray                `db:"guides"`
	CreatedAt       time.Time                     `db:"created_at"`
}

func (r *tourRow) toDomain() *domain.Tour {
	t := &domain.Tour{
		ID:              r.ID,
		Name:            r.Name,
		Slug:            r.Slug,
		Duration:        r.Duration,
		MaxGroupSize:    r.MaxGroupSize,
		Difficulty:      domain.Difficulty(r.Difficulty),
		RatingsAverage:  r.RatingsAverage,
		RatingsQuantity: r.RatingsQuantity,
		Price:           r.Price,
		Summary:         r.Summary,
		Description:     r.Description,
		ImageCover:      r.ImageCover,
		Images:          []string(r.Images),
		StartDates:      r.StartDates.V,
		SecretTour:      r.SecretTour,
		StartLocation:   r.StartLocation.V,
		Locations:       r.Locations.V,
		GuideIDs:        []string(r.Guides),
		CreatedAt:       r.CreatedAt,
	}
	if r.PriceDiscount.Valid {
		d := r.PriceDiscount.Float64
		t.PriceDiscount = &d
	}
	return t
}

type userSummaryRow struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
	Photo string `db:"photo"`
	Role  string `db:"role"`
}

func (r *userSummaryRow) toDomain() *domain.UserSummary {
	return &domain.UserSummary{ID: r.ID, Name: r.Name, Email: r.Email, Photo: r.Photo, Role: domain.Role(r.Role)}
}

type TourRepository struct {
	db       *dbpg.DB
	dbx      *sqlx.DB
	strategy retry.Strategy
}

func NewTourRepo(db *dbpg.DB) *TourRepository {
	return &TourRepository{
		db:       db,
		dbx:      sqlx.NewDb(db.Master, "postgres"),
		strategy: defaultStrategy(),
	}
}

func (r *TourRepository) List(ctx context.Context, q *query.Query) ([]*domain.Tour, error) {
	clause, err := TourSchema.Build(q)
	if err != nil {
		return nil, err
	}

	stmt, args := clause.SQL("SELECT "+tourColumns+" FROM tours t", []string{"NOT t.secret_tour"})
	return r.selectTours(ctx, stmt, args...)
}

func (r *TourRepository) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	return r.getOne(ctx, "t.id = $1", id)
}

func (r *TourRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tour, error) {
	t, err := r.getOne(ctx, "t.slug = $1", slug)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrTourNotFound
	}
	return t, err
}

func (r *TourRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Tour, error) {
	if len(ids) == 0 {
		return []*domain.Tour{}, nil
	}
	stmt := `SELECT ` + tourColumns + ` FROM tours t
			 WHERE t.id = ANY($1) AND NOT t.secret_tour
			 ORDER BY t.created_at DESC, t.id`
	return r.selectTours(ctx, stmt, pq.Array(ids))
}

func (r *TourRepository) Create(ctx context.Context, t *domain.Tour) error {
	stmt := `INSERT INTO tours (id, name, slug, duration, max_group_size, difficulty,
				ratings_average, ratings_quantity, price, price_discount, summary, description,
				image_cover, images, start_dates, secret_tour, start_location, locations, guides, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

	_, err := r.db.ExecWithRetry(ctx, r.strategy, stmt,
		t.ID, t.Name, t.Slug, t.Duration, t.MaxGroupSize, string(t.Difficulty),
		t.RatingsAverage, t.RatingsQuantity, t.Price, t.PriceDiscount, t.Summary, t.Description,
		t.ImageCover, pq.Array(nonNil(t.Images)), jsonColumn[[]time.Time]{V: nonNil(t.StartDates)},
		t.SecretTour, jsonColumn[*domain.GeoPoint]{V: t.StartLocation},
		jsonColumn[[]domain.GeoPoint]{V: nonNil(t.Locations)}, pq.Array(nonNil(t.GuideIDs)), t.CreatedAt,
	)
	if err != nil {
		if dup, ok := duplicateError(err); ok {
			return dup
		}
		return fmt.Errorf("insert tour: %w", err)
	}

	return nil
}

func (r *TourRepository) Update(ctx context.Context, t *domain.Tour) error {
	stmt := `UPDATE tours SET name = $2, slug = $3, duration = $4, max_group_size = $5,
				difficulty = $6, price = $7, price_discount = $8, summary = $9, description = $10,
				image_cover = $11, images = $12, start_dates = $13, secret_tour = $14,
				start_location = $15, locations = $16, guides = $17
			 WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, stmt,
		t.ID, t.Name, t.Slug, t.Duration, t.MaxGroupSize, string(t.Difficulty),
		t.Price, t.PriceDiscount, t.Summary, t.Description, t.ImageCover,
		pq.Array(nonNil(t.Images)), jsonColumn[[]time.Time]{V: nonNil(t.StartDates)}, t.SecretTour,
		jsonColumn[*domain.GeoPoint]{V: t.StartLocation},
		jsonColumn[[]domain.GeoPoint]{V: nonNil(t.Locations)}, pq.Array(nonNil(t.GuideIDs)),
	)
	if err != nil {
		if dup, ok := duplicateError(err); ok {
			return dup
		}
		return fmt.Errorf("update tour: %w", err)
	}

	return requireAffected(res)
}

func (r *TourRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM tours WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tour: %w", err)
	}
	return requireAffected(res)
}

func (r *TourRepository) Stats(ctx context.Context, minRating float64) ([]*domain.TourStats, error) {
	stmt := `SELECT difficulty, COUNT(*), SUM(ratings_quantity), AVG(ratings_average),
				AVG(price), MIN(price), MAX(price)
			 FROM tours
			 WHERE ratings_average >= $1 AND NOT secret_tour
			 GROUP BY difficulty
			 ORDER BY AVG(price) ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, stmt, minRating)
	if err != nil {
		return nil, fmt.Errorf("tour stats: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.TourStats, 0)
	for rows.Next() {
		var s domain.TourStats
		if err = rows.Scan(
			&s.Difficulty, &s.NumTours, &s.NumRatings, &s.AvgRating,
			&s.AvgPrice, &s.MinPrice, &s.MaxPrice,
		); err != nil {
			return nil, fmt.Errorf("scan tour stats: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *TourRepository) MonthlyPlan(ctx context.Context, year int) ([]*domain.MonthlyPlan, error) {
	stmt := `SELECT EXTRACT(MONTH FROM sd.start_date::timestamptz)::int AS month,
				COUNT(*) AS num_tour_starts,
				array_agg(t.name ORDER BY t.name) AS tours
			 FROM tours t
			 CROSS JOIN LATERAL jsonb_array_elements_text(t.start_dates) AS sd(start_date)
			 WHERE NOT t.secret_tour
			   AND sd.start_date::timestamptz >= $1
			   AND sd.start_date::timestamptz < $2
			 GROUP BY month
			 ORDER BY num_tour_starts DESC, month ASC
			 LIMIT 12`

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, stmt, from, from.AddDate(1, 0, 0))
	if err != nil {
		return nil, fmt.Errorf("monthly plan: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.MonthlyPlan, 0, 12)
	for rows.Next() {
		var (
			p     domain.MonthlyPlan
			tours pq.StringArray
		)
		if err = rows.Scan(&p.Month, &p.NumTourStarts, &tours); err != nil {
			return nil, fmt.Errorf("scan monthly plan: %w", err)
		}
		p.Tours = []string(tours)
		res = append(res, &p)
	}

	return res, rows.Err()
}

func (r *TourRepository) Within(ctx context.Context, lat, lng, radius float64) ([]*domain.Tour, error) {
	stmt := `SELECT ` + tourColumns + ` FROM tours t
			 WHERE NOT t.secret_tour AND t.start_location IS NOT NULL
			   AND ` + centralAngle + ` <= $3
			 ORDER BY t.created_at DESC, t.id`
	return r.selectTours(ctx, stmt, lat, lng, radius)
}

func (r *TourRepository) Distances(ctx context.Context, lat, lng, multiplier float64) ([]*domain.TourDistance, error) {
	stmt := `SELECT t.id, t.name, ` + centralAngle + ` * $3::float8 * $4::float8 AS distance
			 FROM tours t
			 WHERE NOT t.secret_tour AND t.start_location IS NOT NULL
			 ORDER BY distance ASC`

	res := make([]*domain.TourDistance, 0)
	if err := r.dbx.SelectContext(ctx, &res, stmt, lat, lng, earthRadiusMeters, multiplier); err != nil {
		return nil, fmt.Errorf("tour distances: %w", err)
	}
	return res, nil
}

func (r *TourRepository) getOne(ctx context.Context, cond string, arg any) (*domain.Tour, error) {
	var row tourRow
	stmt := `SELECT ` + tourColumns + ` FROM tours t WHERE ` + cond + ` AND NOT t.secret_tour`
	if err := r.dbx.GetContext(ctx, &row, stmt, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get tour: %w", err)
	}

	t := row.toDomain()
	if err := r.attachGuides(ctx, []*domain.Tour{t}); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TourRepository) selectTours(ctx context.Context, stmt string, args ...any) ([]*domain.Tour, error) {
	var rows []tourRow
	if err := r.dbx.SelectContext(ctx, &rows, stmt, args...); err != nil {
		return nil, fmt.Errorf("select tours: %w", err)
	}

	res := make([]*domain.Tour, 0, len(rows))
	for i := range rows {
		res = append(res, rows[i].toDomain())
	}

	if err := r.attachGuides(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// attachGuides populates Guides in the order of GuideIDs, skipping inactive users.
func (r *TourRepository) attachGuides(ctx context.Context, tours []*domain.Tour) error {
	seen := make(map[string]struct{})
	var ids []string
	for _, t := range tours {
		for _, id := range t.GuideIDs {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	if len(ids) == 0 {
		for _, t := range tours {
			t.Guides = []*domain.UserSummary{}
		}
		return nil
	}

	var rows []userSummaryRow
	stmt := `SELECT id, name, email, photo, role FROM users WHERE id = ANY($1) AND active`
	if err := r.dbx.SelectContext(ctx, &rows, stmt, pq.Array(ids)); err != nil {
		return fmt.Errorf("select guides: %w", err)
	}

	byID := make(map[string]*domain.UserSummary, len(rows))
	for i := range rows {
		byID[rows[i].ID] = rows[i].toDomain()
	}
	for _, t := range tours {
		t.Guides = make([]*domain.UserSummary, 0, len(t.GuideIDs))
		for _, id := range t.GuideIDs {
			if g, ok := byID[id]; ok {
				t.Guides = append(t.Guides, g)
			}
		}
	}
	return nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
