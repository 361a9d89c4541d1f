package service

import (
	"context"
	"fmt"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/daavo03/node-tours-app/internal/query"
	"github.com/daavo03/node-tours-app/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type UserService struct {
	repo   ports.UserRepo
	logger logger.Logger
}

func NewUserService(repo ports.UserRepo, logger logger.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context, q *query.Query) ([]*domain.User, error) {
	return s.repo.List(ctx, q)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies an admin edit. Passwords are never changed here.
func (s *UserService) Update(ctx context.Context, id string, in domain.UserInput) (*domain.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	in.Apply(u)
	if err = domain.Validate(u); err != nil {
		return nil, err
	}

	if err = s.repo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// UpdateMe lets a user change their own name, email and photo.
func (s *UserService) UpdateMe(ctx context.Context, id string, in domain.UserInput) (*domain.User, error) {
	return s.Update(ctx, id, in.SelfUpdate())
}

func (s *UserService) DeleteMe(ctx context.Context, id string) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}

	s.logger.Info("user deactivated", logger.String("user_id", id))
	return nil
}

func (s *UserService) PurgeExpiredResetTokens(ctx context.Context) (int64, error) {
	n, err := s.repo.PurgeExpiredResetTokens(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge reset tokens: %w", err)
	}

	if n > 0 {
		s.logger.Info("expired reset tokens cleared", logger.Int64("count", n))
	}
	return n, nil
}
