package services

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shopprr-backend/models"
)

// UserService handles account registration, credential checks, and the
// customer management used by the admin console.
type UserService struct {
	users AccountStore
}

func NewUserService(users AccountStore) *UserService {
	return &UserService{users: users}
}

// Register creates a customer account with a hashed password and an
// empty cart. A duplicate email is a validation failure.
func (s *UserService) Register(ctx context.Context, user models.User) (*models.User, error) {
	existing, err := s.users.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ValidationError{Field: "email", Message: "Email already exists"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user.Password = string(hashed)
	user.Role = models.RoleCustomer
	user.IsActive = true
	user.CartData = models.CartData{}
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := s.users.Insert(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// VerifyCredentials resolves an email/password pair to a user. An
// unknown email and a wrong password both yield (nil, nil) so callers
// cannot tell the two apart.
func (s *UserService) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil
	}
	return user, nil
}

// UserUpdate enumerates every profile field an update may change. Nil
// fields are left untouched.
type UserUpdate struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Gender      *string `json:"gender"`
	DateOfBirth *string `json:"dateOfBirth"`
	Age         *int    `json:"age"`
	Password    *string `json:"password"`
}

// Update applies the provided fields only, re-hashing the password when
// one is given, and bumps updatedAt.
func (s *UserService) Update(ctx context.Context, id string, update UserUpdate) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Resource: "User"}
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.Address != nil {
		user.Address = *update.Address
	}
	if update.Gender != nil {
		user.Gender = *update.Gender
	}
	if update.DateOfBirth != nil {
		user.DateOfBirth = *update.DateOfBirth
	}
	if update.Age != nil {
		user.Age = *update.Age
	}
	if update.Password != nil && *update.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, id, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List returns every account.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// Delete removes an account permanently.
func (s *UserService) Delete(ctx context.Context, id string) error {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return &NotFoundError{Resource: "User"}
	}
	return nil
}
