package service

import (
	"context"
	"errors"
	"testing"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/daavo03/node-tours-app/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestUserService_Update_AppliesAdminFields(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	u := &domain.User{ID: "u1", Name: "Leo", Email: "leo@example.com", Role: domain.RoleUser, Active: true}
	repo.EXPECT().GetByID(mock.Anything, "u1").Return(u, nil)
	repo.EXPECT().Update(mock.Anything, u).Return(nil)

	role := domain.RoleGuide
	got, err := svc.Update(context.Background(), "u1", domain.UserInput{
		Name:  ptr("  Leo Gillespie "),
		Email: ptr("LEO@Example.com"),
		Role:  &role,
	})

	require.NoError(t, err)
	assert.Equal(t, "Leo Gillespie", got.Name)
	assert.Equal(t, "leo@example.com", got.Email)
	assert.Equal(t, domain.RoleGuide, got.Role)
}

func TestUserService_Update_InvalidEmail(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	u := &domain.User{ID: "u1", Name: "Leo", Email: "leo@example.com", Role: domain.RoleUser}
	repo.EXPECT().GetByID(mock.Anything, "u1").Return(u, nil)

	_, err := svc.Update(context.Background(), "u1", domain.UserInput{Email: ptr("not-an-email")})

	require.Error(t, err)
	var invalid *domain.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Error(), "Please provide a valid email")
}

func TestUserService_UpdateMe_IgnoresRole(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	u := &domain.User{ID: "u1", Name: "Leo", Email: "leo@example.com", Role: domain.RoleUser}
	repo.EXPECT().GetByID(mock.Anything, "u1").Return(u, nil)
	repo.EXPECT().Update(mock.Anything, u).Return(nil)

	role := domain.RoleAdmin
	got, err := svc.UpdateMe(context.Background(), "u1", domain.UserInput{
		Name:   ptr("Leo G"),
		Role:   &role,
		Active: ptr(false),
	})

	require.NoError(t, err)
	assert.Equal(t, "Leo G", got.Name)
	assert.Equal(t, domain.RoleUser, got.Role)
}

func TestUserService_Get_NotFound(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	_, err := svc.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserService_DeleteMe(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	repo.EXPECT().Deactivate(mock.Anything, "u1").Return(nil)

	require.NoError(t, svc.DeleteMe(context.Background(), "u1"))
}

func TestUserService_PurgeExpiredResetTokens(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))

	repo.EXPECT().PurgeExpiredResetTokens(mock.Anything).Return(int64(3), nil).Once()
	repo.EXPECT().PurgeExpiredResetTokens(mock.Anything).Return(int64(0), errors.New("db error")).Once()

	n, err := svc.PurgeExpiredResetTokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = svc.PurgeExpiredResetTokens(context.Background())
	assert.Error(t, err)
}
