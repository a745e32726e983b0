package services

import (
	"context"
	"testing"
	"time"

	"web-store/models"
	"web-store/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture() (*UserService, *memStores, *utils.TokenService) {
	stores := newMemStores()
	tokens := utils.NewTokenService("test-secret", time.Hour)
	return NewUserService(stores, tokens), stores, tokens
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newUserFixture()

	user, err := svc.Create(ctx, models.CreateUserRequest{
		Username:        "testUser",
		Password:        "somePassword",
		ConfirmPassword: "somePassword",
	})
	require.NoError(t, err)
	assert.Equal(t, "testUser", user.Username)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "somePassword", user.Password, "password must be stored hashed")
}

func TestUserService_CreateRejectsBadPasswords(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newUserFixture()

	_, err := svc.Create(ctx, models.CreateUserRequest{
		Username:        "testUser",
		Password:        "somePassword",
		ConfirmPassword: "otherPassword",
	})
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	_, err = svc.Create(ctx, models.CreateUserRequest{
		Username:        "testUser",
		Password:        "short",
		ConfirmPassword: "short",
	})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestUserService_CreateRejectsDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newUserFixture()

	req := models.CreateUserRequest{
		Username:        "testUser",
		Password:        "somePassword",
		ConfirmPassword: "somePassword",
	}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	svc, _, tokens := newUserFixture()

	_, err := svc.Create(ctx, models.CreateUserRequest{
		Username:        "testUser",
		Password:        "somePassword",
		ConfirmPassword: "somePassword",
	})
	require.NoError(t, err)

	result, err := svc.Login(ctx, models.LoginRequest{Username: "testUser", Password: "somePassword"})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	subject, err := tokens.Validate(result.Token, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "testUser", subject)

	_, err = svc.Login(ctx, models.LoginRequest{Username: "testUser", Password: "wrongPassword"})
	assert.ErrorIs(t, err, ErrInvalidLogin)

	_, err = svc.Login(ctx, models.LoginRequest{Username: "nobody", Password: "somePassword"})
	assert.ErrorIs(t, err, ErrInvalidLogin)
}

func TestUserService_Lookups(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newUserFixture()

	created, err := svc.Create(ctx, models.CreateUserRequest{
		Username:        "testUser",
		Password:        "somePassword",
		ConfirmPassword: "somePassword",
	})
	require.NoError(t, err)

	byID, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "testUser", byID.Username)

	byName, err := svc.GetByUsername(ctx, "testUser")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = svc.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
