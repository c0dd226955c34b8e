package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zealr3/stackit-qna/models"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	auth := NewAuthService(env.userRepo)

	resp, err := auth.Register(models.RegisterRequest{
		Username: "newbie",
		Email:    "newbie@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleUser, resp.User.Role)
	assert.Equal(t, 1, resp.User.Reputation)
	assert.True(t, resp.User.IsOnline)

	login, err := auth.Login(models.LoginRequest{Email: "newbie@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
	assert.NotEmpty(t, login.Token)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	env := newTestEnv(t)
	auth := NewAuthService(env.userRepo)

	_, err := auth.Register(models.RegisterRequest{Username: "newbie", Email: "newbie@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = auth.Register(models.RegisterRequest{Username: "newbie", Email: "other@example.com", Password: "password123"})
	require.Error(t, err)
	assert.IsType(t, models.ErrorConflict{}, err)

	_, err = auth.Register(models.RegisterRequest{Username: "other", Email: "NEWBIE@example.com", Password: "password123"})
	require.Error(t, err)
	assert.IsType(t, models.ErrorConflict{}, err)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	auth := NewAuthService(env.userRepo)

	_, err := auth.Register(models.RegisterRequest{Username: "newbie", Email: "newbie@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = auth.Login(models.LoginRequest{Email: "newbie@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.IsType(t, models.ErrorUnauthorized{}, err)

	// An unknown email reads the same as a wrong password.
	_, err = auth.Login(models.LoginRequest{Email: "ghost@example.com", Password: "password123"})
	require.Error(t, err)
	assert.IsType(t, models.ErrorUnauthorized{}, err)
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	auth := NewAuthService(env.userRepo)

	user, err := auth.UpdateProfile(env.asker.ID, models.UpdateProfileRequest{Bio: "I ask a lot of questions."})
	require.NoError(t, err)
	assert.Equal(t, "I ask a lot of questions.", user.Bio)
	assert.Equal(t, env.asker.Username, user.Username)

	// Taking another member's username is a conflict.
	_, err = auth.UpdateProfile(env.asker.ID, models.UpdateProfileRequest{Username: env.answerer.Username})
	require.Error(t, err)
	assert.IsType(t, models.ErrorConflict{}, err)
}
