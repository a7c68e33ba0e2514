package services

import (
	"testing"

	"gin-crud-api/constants"
	"gin-crud-api/dto"
	"gin-crud-api/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthService(t *testing.T) (IAuthService, IUserService) {
	t.Helper()
	db := setupTestDB(t)
	userRepository := repositories.NewUserRepository(db)
	tokenRepository := repositories.NewTokenRepository(db)
	return NewAuthService(userRepository, tokenRepository, "test-secret"), NewUserService(userRepository)
}

func TestAuthServiceLogin(t *testing.T) {
	authService, userService := setupAuthService(t)

	created, err := userService.Create(dto.CreateUserInput{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)

	_, err = authService.Login("a@b.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = authService.Login("missing@b.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	token, err := authService.Login("a@b.com", "pw")
	require.NoError(t, err)
	require.NotNil(t, token)

	user, err := authService.GetUserFromToken(*token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, created.Email, user.Email)
}

func TestAuthServiceLogoutRevokesToken(t *testing.T) {
	authService, userService := setupAuthService(t)

	_, err := userService.Create(dto.CreateUserInput{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)

	token, err := authService.Login("a@b.com", "pw")
	require.NoError(t, err)

	require.NoError(t, authService.Logout(*token))

	_, err = authService.GetUserFromToken(*token)
	assert.Error(t, err)
}

func TestAuthServiceRejectsGarbageToken(t *testing.T) {
	authService, _ := setupAuthService(t)

	_, err := authService.GetUserFromToken("not-a-token")
	assert.Error(t, err)
}

func TestAuthServiceResolveFixedIdentity(t *testing.T) {
	authService, _ := setupAuthService(t)

	user, err := authService.ResolveFixedIdentity()
	require.NoError(t, err)
	assert.Equal(t, constants.DevIdentityEmail, user.Email)
	assert.True(t, user.IsActive)

	// 二度目は同じユーザーを返し、二重作成しない
	again, err := authService.ResolveFixedIdentity()
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}
