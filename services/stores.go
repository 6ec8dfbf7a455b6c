package services

import (
	"context"

	"shopprr-backend/models"
)

// Store interfaces consumed by the services. The mongo-backed
// implementations live in the store package; tests substitute in-memory
// fakes. Lookups return (nil, nil) when no document matches so the
// services own the not-found semantics.

type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	UpdateCart(ctx context.Context, id string, cart models.CartData) error
}

// AccountStore is the wider user surface needed for registration, login,
// and the admin console's customer management.
type AccountStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (string, error)
	Update(ctx context.Context, id string, user *models.User) error
	List(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ProductStore interface {
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Product, error)
	Update(ctx context.Context, id string, product *models.Product) error
}

type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) (string, error)
	FindByID(ctx context.Context, id string) (*models.Order, error)
	FindByUser(ctx context.Context, userID string) ([]models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	Update(ctx context.Context, id string, order *models.Order) error
	Delete(ctx context.Context, id string) (bool, error)
}

type ReviewStore interface {
	Insert(ctx context.Context, review *models.Review) (string, error)
	FindByProduct(ctx context.Context, productID string) ([]models.Review, error)
	FindByUser(ctx context.Context, userID string) ([]models.Review, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type CategoryStore interface {
	ListActive(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id string) (*models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	Insert(ctx context.Context, category *models.Category) (string, error)
	Update(ctx context.Context, id string, category *models.Category) error
	Delete(ctx context.Context, id string) (bool, error)
}
