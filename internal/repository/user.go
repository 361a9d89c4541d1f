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

const userColumns = `u.id, u.name, u.email, u.photo, u.role, u.password_hash, u.password_changed_at,
	u.password_reset_token, u.password_reset_expires, u.active, u.created_at`

var UserSchema = &query.Schema{
	Columns: map[string]query.Column{
		"id":        {Name: "u.id", Kind: query.UUID},
		"name":      {Name: "u.name", Kind: query.String},
		"email":     {Name: "u.email", Kind: query.String},
		"role":      {Name: "u.role", Kind: query.String},
		"createdAt": {Name: "u.created_at", Kind: query.Time},
	},
	DefaultSort: "-createdAt",
	IDColumn:    "u.id",
}

type userRow struct {
	ID                   string         `db:"id"`
	Name                 string         `db:"name"`
	Email                string         `db:"email"`
	Photo                string         `db:"photo"`
	Role                 string         `db:"role"`
	PasswordHash         string         `db:"password_hash"`
	PasswordChangedAt    sql.NullTime   `db:"password_changed_at"`
	PasswordResetToken   sql.NullString `db:"password_reset_token"`
	PasswordResetExpires sql.NullTime   `db:"password_reset_expires"`
	Active               bool           `db:"active"`
	CreatedAt            time.Time      `db:"created_at"`
}

func (r *userRow) toDomain() *domain.User {
	u := &domain.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		Photo:        r.Photo,
		Role:         domain.Role(r.Role),
		PasswordHash: r.PasswordHash,
		Active:       r.Active,
		CreatedAt:    r.CreatedAt,
	}
	if r.PasswordChangedAt.Valid {
		u.PasswordChangedAt = &r.PasswordChangedAt.Time
	}
	if r.PasswordResetToken.Valid {
		u.PasswordResetToken = &r.PasswordResetToken.String
	}
	if r.PasswordResetExpires.Valid {
		u.PasswordResetExpires = &r.PasswordResetExpires.Time
	}
	return u
}

type UserRepository struct {
	db       *dbpg.DB
	dbx      *sqlx.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db:       db,
		dbx:      sqlx.NewDb(db.Master, "postgres"),
		strategy: defaultStrategy(),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	stmt := `INSERT INTO users (id, name, email, photo, role, password_hash, password_changed_at, active, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecWithRetry(ctx, r.strategy, stmt,
		u.ID, u.Name, u.Email, u.Photo, string(u.Role), u.PasswordHash,
		u.PasswordChangedAt, u.Active, u.CreatedAt,
	)
	if err != nil {
		if dup, ok := duplicateError(err); ok {
			return dup
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) List(ctx context.Context, q *query.Query) ([]*domain.User, error) {
	clause, err := UserSchema.Build(q)
	if err != nil {
		return nil, err
	}

	stmt, args := clause.SQL("SELECT "+userColumns+" FROM users u", []string{"u.active"})

	var rows []userRow
	if err = r.dbx.SelectContext(ctx, &rows, stmt, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	res := make([]*domain.User, 0, len(rows))
	for i := range rows {
		res = append(res, rows[i].toDomain())
	}
	return res, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, "u.id = $1", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, "u.email = $1", email)
}

// GetByResetToken finds the user holding an unexpired reset token digest.
func (r *UserRepository) GetByResetToken(ctx context.Context, digest string) (*domain.User, error) {
	return r.getOne(ctx, "u.password_reset_token = $1 AND u.password_reset_expires > now()", digest)
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	stmt := `UPDATE users SET name = $2, email = $3, photo = $4, role = $5, active = $6
			 WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, stmt,
		u.ID, u.Name, u.Email, u.Photo, string(u.Role), u.Active,
	)
	if err != nil {
		if dup, ok := duplicateError(err); ok {
			return dup
		}
		return fmt.Errorf("update user: %w", err)
	}

	return requireAffected(res)
}

// SetPassword stores a new hash and clears any pending reset token.
func (r *UserRepository) SetPassword(ctx context.Context, id, hash string, changedAt time.Time) error {
	stmt := `UPDATE users
			 SET password_hash = $2, password_changed_at = $3,
			     password_reset_token = NULL, password_reset_expires = NULL
			 WHERE id = $1 AND active`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, stmt, id, hash, changedAt)
	if err != nil {
		return fmt.Errorf("set password: %w", err)
	}
	return requireAffected(res)
}

// SetResetToken stores a reset token digest; a nil digest clears it.
func (r *UserRepository) SetResetToken(ctx context.Context, id string, digest *string, expires *time.Time) error {
	stmt := `UPDATE users SET password_reset_token = $2, password_reset_expires = $3 WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, stmt, id, digest, expires)
	if err != nil {
		return fmt.Errorf("set reset token: %w", err)
	}
	return requireAffected(res)
}

func (r *UserRepository) Deactivate(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy,
		`UPDATE users SET active = FALSE WHERE id = $1 AND active`, id)
	if err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}
	return requireAffected(res)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM users WHERE id = $1 AND active`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return requireAffected(res)
}

// PurgeExpiredResetTokens clears reset tokens whose expiry has passed.
func (r *UserRepository) PurgeExpiredResetTokens(ctx context.Context) (int64, error) {
	stmt := `UPDATE users
			 SET password_reset_token = NULL, password_reset_expires = NULL
			 WHERE password_reset_expires < now()`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, stmt)
	if err != nil {
		return 0, fmt.Errorf("purge reset tokens: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

func (r *UserRepository) getOne(ctx context.Context, cond string, args ...any) (*domain.User, error) {
	var row userRow
	stmt := `SELECT ` + userColumns + ` FROM users u WHERE ` + cond + ` AND u.active`
	if err := r.dbx.GetContext(ctx, &row, stmt, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return row.toDomain(), nil
}
