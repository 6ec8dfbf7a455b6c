package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopprr-backend/config"
	"shopprr-backend/models"
)

func newSessionFixture(t *testing.T) (*fakeUserStore, *SessionService) {
	t.Helper()
	users := newFakeUserStore()
	svc := NewSessionService(users, []byte("test-secret"), config.SessionPolicy{
		CookieName:  "user_session",
		CustomerTTL: 7 * 24 * time.Hour,
		AdminTTL:    24 * time.Hour,
	})
	return users, svc
}

func TestSessionTokenRoundtrip(t *testing.T) {
	users, svc := newSessionFixture(t)
	userID := users.add(&models.User{Name: "Ana", Role: models.RoleCustomer})

	token, err := svc.IssueToken(userID, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := svc.Authenticate(context.Background(), token)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, userID, user.ID.Hex())
}

func TestSessionAuthenticateAnonymous(t *testing.T) {
	_, svc := newSessionFixture(t)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		user, err := svc.Authenticate(context.Background(), token)
		assert.NoError(t, err)
		assert.Nil(t, user)
	}
}

func TestSessionAuthenticateExpired(t *testing.T) {
	users, svc := newSessionFixture(t)
	userID := users.add(&models.User{Name: "Ana"})

	token, err := svc.IssueToken(userID, -time.Minute)
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), token)
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestSessionAuthenticateWrongSecret(t *testing.T) {
	users, svc := newSessionFixture(t)
	userID := users.add(&models.User{Name: "Ana"})

	other := NewSessionService(users, []byte("other-secret"), svc.Policy)
	token, err := other.IssueToken(userID, time.Hour)
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), token)
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestSessionAuthenticateDeletedUser(t *testing.T) {
	users, svc := newSessionFixture(t)
	userID := users.add(&models.User{Name: "Ana"})

	token, err := svc.IssueToken(userID, time.Hour)
	require.NoError(t, err)

	delete(users.users, userID)
	user, err := svc.Authenticate(context.Background(), token)
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestAuthorize(t *testing.T) {
	customer := &models.User{Role: models.RoleCustomer}
	admin := &models.User{Role: models.RoleAdmin}
	staff := &models.User{Role: models.RoleStaff}

	assert.ErrorIs(t, Authorize(nil), ErrUnauthenticated)
	assert.ErrorIs(t, Authorize(nil, models.RoleAdmin), ErrUnauthenticated)

	// No role restriction means any authenticated user passes.
	assert.NoError(t, Authorize(customer))

	assert.NoError(t, Authorize(admin, models.RoleAdmin, models.RoleStaff))
	assert.NoError(t, Authorize(staff, models.RoleAdmin, models.RoleStaff))
	assert.ErrorIs(t, Authorize(customer, models.RoleAdmin, models.RoleStaff), ErrForbidden)
}
