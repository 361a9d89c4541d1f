package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/daavo03/node-tours-app/internal/query"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return &dbpg.DB{Master: db}, mock
}

var tourRowColumns = []string{
	"id", "name", "slug", "duration", "max_group_size", "difficulty",
	"ratings_average", "ratings_quantity", "price", "price_discount", "summary",
	"description", "image_cover", "images", "start_dates", "secret_tour",
	"start_location", "locations", "guides", "created_at",
}

func TestDuplicateValue(t *testing.T) {
	assert.Equal(t, "hello@natours.io", duplicateValue("Key (email)=(hello@natours.io) already exists."))
	assert.Equal(t, "a, b", duplicateValue("Key (tour_id, user_id)=(a, b) already exists."))
	assert.Equal(t, "unexpected", duplicateValue("unexpected"))
}

func TestJSONColumn_Scan(t *testing.T) {
	var c jsonColumn[*domain.GeoPoint]
	require.NoError(t, c.Scan([]byte(`{"type":"Point","coordinates":[-80.18,25.77],"address":"Miami"}`)))
	require.NotNil(t, c.V)
	assert.Equal(t, 25.77, c.V.Lat())
	assert.Equal(t, "Miami", c.V.Address)

	require.NoError(t, c.Scan(nil))
	assert.Nil(t, c.V)

	assert.Error(t, c.Scan(42))
}

func TestJSONColumn_ValueNullForNil(t *testing.T) {
	v, err := jsonColumn[*domain.GeoPoint]{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = jsonColumn[[]time.Time]{V: []time.Time{}}.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestTourRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTourRepo(db)

	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	guideID := "8a1b6a6b-0a3b-4e5e-8f7e-1b2f3a4c5d6e"
	rows := sqlmock.NewRows(tourRowColumns).AddRow(
		"0b9f3c1e-7d6a-4c52-9f1e-2a3b4c5d6e7f", "The Forest Hiker", "the-forest-hiker", 5, 25, "easy",
		4.7, 37, 397.0, nil, "Breathtaking hike",
		"", "tour-1-cover.jpg", "{tour-1-1.jpg,tour-1-2.jpg}", `["2024-04-25T09:00:00Z"]`, false,
		`{"type":"Point","coordinates":[-116.21,51.41]}`, `[]`, "{"+guideID+"}", created,
	)
	mock.ExpectQuery(`FROM tours t WHERE NOT t.secret_tour AND t.price <= \$1 ORDER BY t.created_at DESC, t.id ASC LIMIT \$2 OFFSET \$3`).
		WithArgs(500.0, 100, 0).
		WillReturnRows(rows)
	mock.ExpectQuery(`SELECT id, name, email, photo, role FROM users WHERE id = ANY\(\$1\) AND active`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "photo", "role"}).
			AddRow(guideID, "Lourdes Browning", "lourdes@example.com", "user-2.jpg", "guide"))

	q := &query.Query{
		Filters: []query.Condition{{Field: "price", Op: query.OpLte, Values: []string{"500"}}},
		Page:    1,
		Limit:   100,
	}
	tours, err := repo.List(context.Background(), q)

	require.NoError(t, err)
	require.Len(t, tours, 1)
	tour := tours[0]
	assert.Equal(t, "The Forest Hiker", tour.Name)
	assert.Equal(t, []string{"tour-1-1.jpg", "tour-1-2.jpg"}, tour.Images)
	assert.Nil(t, tour.PriceDiscount)
	require.Len(t, tour.StartDates, 1)
	assert.Equal(t, 4, int(tour.StartDates[0].Month()))
	require.NotNil(t, tour.StartLocation)
	assert.Equal(t, 51.41, tour.StartLocation.Lat())
	require.Len(t, tour.Guides, 1)
	assert.Equal(t, "Lourdes Browning", tour.Guides[0].Name)
}

func TestTourRepository_List_CastError(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewTourRepo(db)

	q := &query.Query{
		Filters: []query.Condition{{Field: "duration", Op: query.OpGte, Values: []string{"long"}}},
		Page:    1,
		Limit:   100,
	}
	_, err := repo.List(context.Background(), q)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTourRepository_GetBySlug_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTourRepo(db)

	mock.ExpectQuery(`WHERE t.slug = \$1 AND NOT t.secret_tour`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetBySlug(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrTourNotFound)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	changed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery(`FROM users u WHERE u.email = \$1 AND u.active`).
		WithArgs("admin@natours.io").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "photo", "role", "password_hash", "password_changed_at",
			"password_reset_token", "password_reset_expires", "active", "created_at",
		}).AddRow("u1", "Jonas", "admin@natours.io", "default.jpg", "admin", "$2a$hash", changed,
			nil, nil, true, changed))

	u, err := repo.GetByEmail(context.Background(), "admin@natours.io")

	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, u.Role)
	assert.Equal(t, "$2a$hash", u.PasswordHash)
	require.NotNil(t, u.PasswordChangedAt)
	assert.True(t, changed.Equal(*u.PasswordChangedAt))
	assert.Nil(t, u.PasswordResetToken)
}

func TestReviewRepository_Create_RecalculatesRatings(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepo(db)

	rv := &domain.Review{
		ID: "r1", Review: "Amazing!", Rating: 5, TourID: "t1", UserID: "u1", CreatedAt: time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO reviews`).
		WithArgs("r1", "Amazing!", 5, "t1", "u1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE tours SET`).
		WithArgs("t1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), rv))
}

func TestReviewRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepo(db)

	rv := &domain.Review{ID: "r1", Review: "Again", Rating: 3, TourID: "t1", UserID: "u1"}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO reviews`).
		WillReturnError(&pq.Error{Code: "23505", Detail: "Key (tour_id, user_id)=(t1, u1) already exists."})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), rv)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.EqualError(t, err, "Duplicate field value: t1, u1. Please use another value!")
}

func TestReviewRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`DELETE FROM reviews WHERE id = \$1 RETURNING tour_id`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"tour_id"}))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`WHERE b.user_id = \$1 ORDER BY b.created_at DESC`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "tour_id", "user_id", "price", "paid", "created_at",
			"tour_name", "tour_slug", "tour_start_dates", "user_name", "user_email",
		}).AddRow("b1", "t1", "u1", 497.0, true, created,
			"The Sea Explorer", "the-sea-explorer", `["2024-06-19T09:00:00Z"]`, "Laura", "laura@example.com"))

	bookings, err := repo.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "The Sea Explorer", bookings[0].Tour.Name)
	assert.Equal(t, "laura@example.com", bookings[0].User.Email)
	assert.Len(t, bookings[0].Tour.StartDates, 1)
}

func TestDataRepository_Truncate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDataRepo(db)

	mock.ExpectExec(`TRUNCATE bookings, reviews, tours, users CASCADE`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Truncate(context.Background()))
}
