package serviceimpl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sproutly/domain/dto"
	"sproutly/pkg/utils"
)

const testJWTSecret = "test-secret"

func newUserServiceForTest(t *testing.T) (*UserServiceImpl, *fakeUserRepo) {
	t.Helper()
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo, testJWTSecret).(*UserServiceImpl)
	return svc, userRepo
}

func TestRegisterAssignsID(t *testing.T) {
	ctx := context.Background()
	svc, userRepo := newUserServiceForTest(t)

	user, err := svc.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "hunter2"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	fetched, err := userRepo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, user.ID, fetched.ID)
	assert.Equal(t, "alice", fetched.Username)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserServiceForTest(t)

	_, err := svc.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "one"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "two"})
	assert.EqualError(t, err, "username already exists")
}

func TestLoginIssuesValidToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserServiceForTest(t)

	registered, err := svc.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "hunter2"})
	require.NoError(t, err)

	token, user, err := svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	claims, err := utils.ValidateToken(token, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.ID)
	assert.Equal(t, "alice", claims.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserServiceForTest(t)

	_, err := svc.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "hunter2"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "wrong"})
	assert.EqualError(t, err, "invalid username or password")

	_, _, err = svc.Login(ctx, &dto.LoginRequest{Username: "nobody", Password: "hunter2"})
	assert.EqualError(t, err, "invalid username or password")
}

func TestGetProfileMissingUser(t *testing.T) {
	svc, _ := newUserServiceForTest(t)

	user, err := svc.GetProfile(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, user)
}
