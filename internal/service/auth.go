package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/daavo03/node-tours-app/internal/auth"
	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/daavo03/node-tours-app/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const resetTokenTTL = 10 * time.Minute

type AuthService struct {
	users  ports.UserRepo
	tokens *auth.TokenManager
	hasher *auth.Hasher
	mailer ports.Mailer
	logger logger.Logger
	now    func() time.Time
}

func NewAuthService(
	users ports.UserRepo,
	tokens *auth.TokenManager,
	hasher *auth.Hasher,
	mailer ports.Mailer,
	logger logger.Logger,
) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		hasher: hasher,
		mailer: mailer,
		logger: logger,
		now:    time.Now,
	}
}

// Signup registers a regular user and returns it with a fresh token.
// The welcome email is sent in the background.
func (s *AuthService) Signup(ctx context.Context, in domain.SignupInput, accountURL string) (*domain.User, string, error) {
	in.Normalize()
	if err := domain.Validate(in); err != nil {
		return nil, "", err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", err
	}

	u := &domain.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		Photo:        domain.DefaultPhoto,
		Role:         domain.RoleUser,
		PasswordHash: hash,
		Active:       true,
		CreatedAt:    s.now().UTC(),
	}
	if err = s.users.Create(ctx, u); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user signed up", logger.String("user_id", u.ID))

	go func(ctx context.Context) {
		if err := s.mailer.SendWelcome(ctx, u, accountURL); err != nil {
			s.logger.Error("failed to send welcome email",
				logger.String("user_id", u.ID),
				logger.String("error", err.Error()),
			)
		}
	}(context.WithoutCancel(ctx))

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", domain.ErrMissingCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrIncorrectCredentials
		}
		return nil, "", fmt.Errorf("get user: %w", err)
	}

	ok, err := s.hasher.Compare(u.PasswordHash, password)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", domain.ErrIncorrectCredentials
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Authenticate resolves a token to its active user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserGone
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if u.ChangedPasswordAfter(claims.IssuedAt) {
		return nil, domain.ErrPasswordChanged
	}
	return u, nil
}

// ForgotPassword stores a reset token and mails its link. resetURL builds the
// link from the plain token.
func (s *AuthService) ForgotPassword(ctx context.Context, email string, resetURL func(token string) string) error {
	u, err := s.users.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNoUserWithEmail
		}
		return fmt.Errorf("get user: %w", err)
	}

	plain, digest, err := auth.NewResetToken()
	if err != nil {
		return err
	}
	expires := s.now().Add(resetTokenTTL)
	if err = s.users.SetResetToken(ctx, u.ID, &digest, &expires); err != nil {
		return fmt.Errorf("save reset token: %w", err)
	}

	if err = s.mailer.SendPasswordReset(ctx, u, resetURL(plain)); err != nil {
		if clearErr := s.users.SetResetToken(ctx, u.ID, nil, nil); clearErr != nil {
			s.logger.Error("failed to clear reset token",
				logger.String("user_id", u.ID),
				logger.String("error", clearErr.Error()),
			)
		}
		return fmt.Errorf("%w: %w", domain.ErrEmailDelivery, err)
	}

	s.logger.Info("password reset requested", logger.String("user_id", u.ID))
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token string, in domain.PasswordInput) (*domain.User, string, error) {
	u, err := s.users.GetByResetToken(ctx, auth.HashResetToken(strings.TrimSpace(token)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrResetTokenInvalid
		}
		return nil, "", fmt.Errorf("get user by reset token: %w", err)
	}

	return s.setPassword(ctx, u, in)
}

func (s *AuthService) UpdatePassword(ctx context.Context, userID, current string, in domain.PasswordInput) (*domain.User, string, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("get user: %w", err)
	}

	ok, err := s.hasher.Compare(u.PasswordHash, current)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", domain.ErrWrongPassword
	}

	return s.setPassword(ctx, u, in)
}

func (s *AuthService) setPassword(ctx context.Context, u *domain.User, in domain.PasswordInput) (*domain.User, string, error) {
	if err := domain.Validate(in); err != nil {
		return nil, "", err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", err
	}

	// one second back so that a token issued right now stays valid
	changedAt := s.now().Add(-time.Second)
	if err = s.users.SetPassword(ctx, u.ID, hash, changedAt); err != nil {
		return nil, "", fmt.Errorf("set password: %w", err)
	}
	u.PasswordHash = hash
	u.PasswordChangedAt = &changedAt
	u.PasswordResetToken = nil
	u.PasswordResetExpires = nil

	s.logger.Info("password changed", logger.String("user_id", u.ID))

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
