package service

import (
	"testing"

	"rafflebot/internal/domain"
	"rafflebot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestIdentityService_Exists(t *testing.T) {
	users := new(testutil.MockUserRepository)
	users.On("Exists", int64(123)).Return(true, nil)

	svc := NewIdentityService(users)

	exists, err := svc.Exists(123)

	assert.NoError(t, err)
	assert.True(t, exists)
	users.AssertExpectations(t)
}

func TestIdentityService_Register(t *testing.T) {
	users := new(testutil.MockUserRepository)
	user := &domain.User{
		TelegramID: 123,
		FullName:   "Иванов Иван Иванович",
		Username:   "ivan",
		IsActive:   true,
	}
	users.On("Save", user).Return(nil)

	svc := NewIdentityService(users)

	assert.NoError(t, svc.Register(user))
	users.AssertExpectations(t)
}

func TestIdentityService_UpdateActivation(t *testing.T) {
	users := new(testutil.MockUserRepository)
	users.On("UpdateActivation", int64(123), "Иванов Иван Иванович", false).Return(nil)

	svc := NewIdentityService(users)

	err := svc.UpdateActivation(123, "Иванов Иван Иванович", false)

	assert.NoError(t, err)
	users.AssertExpectations(t)
}

func TestIdentityService_UpdateActivation_UnknownUser(t *testing.T) {
	users := new(testutil.MockUserRepository)
	users.On("UpdateActivation", int64(404), "Иванов", true).Return(domain.ErrUserNotFound)

	svc := NewIdentityService(users)

	err := svc.UpdateActivation(404, "Иванов", true)

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
