// Package seed loads the JSON dev-data fixtures into the database.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	toursFile   = "tours.json"
	usersFile   = "users.json"
	reviewsFile = "reviews.json"
)

type tourStore interface {
	Create(ctx context.Context, t *domain.Tour) error
}

type userStore interface {
	Create(ctx context.Context, u *domain.User) error
}

type reviewStore interface {
	Create(ctx context.Context, r *domain.Review) error
}

type truncater interface {
	Truncate(ctx context.Context) error
}

type passwordHasher interface {
	Hash(password string) (string, error)
}

type tourRecord struct {
	domain.Tour
	Guides []string `json:"guides"`
}

type userRecord struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Photo    string      `json:"photo"`
	Role     domain.Role `json:"role"`
	Password string      `json:"password"`
}

type Result struct {
	Tours   int
	Users   int
	Reviews int
}

type Seeder struct {
	tours   tourStore
	users   userStore
	reviews reviewStore
	data    truncater
	hasher  passwordHasher
	logger  logger.Logger
	now     func() time.Time
}

func New(
	tours tourStore,
	users userStore,
	reviews reviewStore,
	data truncater,
	hasher passwordHasher,
	logger logger.Logger,
) *Seeder {
	return &Seeder{
		tours:   tours,
		users:   users,
		reviews: reviews,
		data:    data,
		hasher:  hasher,
		logger:  logger,
		now:     time.Now,
	}
}

// Import reads users, tours and reviews from dir, in that order, so that
// guide and author references resolve.
func (s *Seeder) Import(ctx context.Context, dir string) (Result, error) {
	var res Result

	var users []userRecord
	if err := readJSON(filepath.Join(dir, usersFile), &users); err != nil {
		return res, err
	}
	var tours []tourRecord
	if err := readJSON(filepath.Join(dir, toursFile), &tours); err != nil {
		return res, err
	}
	var reviews []domain.Review
	if err := readJSON(filepath.Join(dir, reviewsFile), &reviews); err != nil {
		return res, err
	}

	now := s.now().UTC()

	for _, rec := range users {
		u, err := s.buildUser(rec, now)
		if err != nil {
			return res, err
		}
		if err = s.users.Create(ctx, u); err != nil {
			return res, fmt.Errorf("user %s: %w", rec.Email, err)
		}
		res.Users++
	}

	for _, rec := range tours {
		t := rec.Tour
		t.GuideIDs = rec.Guides
		t.Slug = domain.Slugify(t.Name)
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}
		if t.RatingsAverage == 0 {
			t.RatingsAverage = domain.DefaultRatingsAverage
		}
		if err := domain.Validate(&t); err != nil {
			return res, fmt.Errorf("tour %s: %w", t.Name, err)
		}
		if err := s.tours.Create(ctx, &t); err != nil {
			return res, fmt.Errorf("tour %s: %w", t.Name, err)
		}
		res.Tours++
	}

	for i := range reviews {
		r := &reviews[i]
		if r.CreatedAt.IsZero() {
			r.CreatedAt = now
		}
		if err := domain.Validate(r); err != nil {
			return res, fmt.Errorf("review %s: %w", r.ID, err)
		}
		if err := s.reviews.Create(ctx, r); err != nil {
			return res, fmt.Errorf("review %s: %w", r.ID, err)
		}
		res.Reviews++
	}

	s.logger.Info("dev data imported",
		logger.Int("users", res.Users),
		logger.Int("tours", res.Tours),
		logger.Int("reviews", res.Reviews),
	)
	return res, nil
}

func (s *Seeder) Delete(ctx context.Context) error {
	if err := s.data.Truncate(ctx); err != nil {
		return err
	}
	s.logger.Info("dev data deleted")
	return nil
}

func (s *Seeder) buildUser(rec userRecord, now time.Time) (*domain.User, error) {
	hash, err := s.hasher.Hash(rec.Password)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", rec.Email, err)
	}

	u := &domain.User{
		ID:           rec.ID,
		Name:         rec.Name,
		Email:        rec.Email,
		Photo:        rec.Photo,
		Role:         rec.Role,
		PasswordHash: hash,
		Active:       true,
		CreatedAt:    now,
	}
	if u.Photo == "" {
		u.Photo = domain.DefaultPhoto
	}
	if u.Role == "" {
		u.Role = domain.RoleUser
	}
	if err = domain.Validate(u); err != nil {
		return nil, fmt.Errorf("user %s: %w", rec.Email, err)
	}
	return u, nil
}

func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err = json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}
