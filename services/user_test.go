package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"shopprr-backend/models"
)

func TestUserRegister(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)

	created, err := svc.Register(context.Background(), models.User{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoleCustomer, created.Role)
	assert.True(t, created.IsActive)
	assert.NotNil(t, created.CartData)
	assert.Empty(t, created.CartData)
	assert.NotEqual(t, "hunter22", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("hunter22")))
}

func TestUserRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserStore()
	users.add(&models.User{Email: "ana@example.com"})
	svc := NewUserService(users)

	_, err := svc.Register(context.Background(), models.User{Email: "ana@example.com", Password: "pw"})
	assert.True(t, IsValidation(err))
	assert.Len(t, users.users, 1)
}

func TestUserVerifyCredentials(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)
	created, err := svc.Register(context.Background(), models.User{
		Email:    "ana@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	user, err := svc.VerifyCredentials(context.Background(), "ana@example.com", "hunter22")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, created.ID, user.ID)

	// Wrong password and unknown email are indistinguishable.
	user, err = svc.VerifyCredentials(context.Background(), "ana@example.com", "wrong")
	assert.NoError(t, err)
	assert.Nil(t, user)

	user, err = svc.VerifyCredentials(context.Background(), "nobody@example.com", "hunter22")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserUpdatePartial(t *testing.T) {
	users := newFakeUserStore()
	userID := users.add(&models.User{Name: "Ana", Email: "ana@example.com"})
	svc := NewUserService(users)

	phone := "0123456789"
	updated, err := svc.Update(context.Background(), userID, UserUpdate{Phone: &phone})
	require.NoError(t, err)

	assert.Equal(t, "0123456789", updated.Phone)
	assert.Equal(t, "Ana", updated.Name)
	assert.Equal(t, "ana@example.com", updated.Email)

	password := "newpass99"
	updated, err = svc.Update(context.Background(), userID, UserUpdate{Password: &password})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newpass99")))
}

func TestUserUpdateUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	name := "Ana"
	_, err := svc.Update(context.Background(), "missing", UserUpdate{Name: &name})
	assert.True(t, IsNotFound(err))
}

func TestUserDelete(t *testing.T) {
	users := newFakeUserStore()
	userID := users.add(&models.User{Name: "Ana"})
	svc := NewUserService(users)

	require.NoError(t, svc.Delete(context.Background(), userID))
	assert.Empty(t, users.users)
}

func TestUserDeleteUnknownNoSideEffect(t *testing.T) {
	users := newFakeUserStore()
	users.add(&models.User{Name: "Ana"})
	svc := NewUserService(users)

	err := svc.Delete(context.Background(), "missing")
	assert.True(t, IsNotFound(err))
	assert.Len(t, users.users, 1)
}
