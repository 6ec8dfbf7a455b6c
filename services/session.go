package services

import (
	"context"
	"time"

	"github.com/dgrijalva/jwt-go"

	"shopprr-backend/config"
	"shopprr-backend/models"
)

// sessionClaims binds a session token to a user id. The token is signed,
// so the cookie value cannot be forged. Revocation is by expiry only:
// logout clears the client cookie and a copied token stays valid until it
// expires naturally.
type sessionClaims struct {
	UserID string `json:"uid"`
	jwt.StandardClaims
}

// SessionService resolves session cookie tokens to authenticated users
// and issues new tokens on login.
type SessionService struct {
	users  UserStore
	secret []byte
	Policy config.SessionPolicy
}

func NewSessionService(users UserStore, secret []byte, policy config.SessionPolicy) *SessionService {
	return &SessionService{users: users, secret: secret, Policy: policy}
}

// IssueToken creates a signed session token for the user with the given
// lifetime.
func (s *SessionService) IssueToken(userID string, ttl time.Duration) (string, error) {
	claims := &sessionClaims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Authenticate resolves a session token to a user. A missing, malformed,
// or expired token yields (nil, nil) rather than an error, so callers decide
// whether anonymous access is permitted. Only store failures are errors.
func (s *SessionService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}

	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, nil
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Authorize checks the user's single role against the allowed set. A nil
// user is unauthenticated; a role outside the set is forbidden. An empty
// set admits any authenticated user.
func Authorize(user *models.User, roles ...string) error {
	if user == nil {
		return ErrUnauthenticated
	}
	if len(roles) == 0 {
		return nil
	}
	for _, role := range roles {
		if user.Role == role {
			return nil
		}
	}
	return ErrForbidden
}
