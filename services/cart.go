package services

import (
	"context"

	"shopprr-backend/models"
)

// CartService maintains the per-user cart stored on the user document.
type CartService struct {
	users UserStore
}

func NewCartService(users UserStore) *CartService {
	return &CartService{users: users}
}

// SetItem upserts the quantity for (productID, size) when quantity is
// positive and removes the entry otherwise. Removing the last size of a
// product removes the product key entirely, so the cart never holds empty
// inner maps. The full cart is written back; concurrent writers are
// last-write-wins.
func (s *CartService) SetItem(ctx context.Context, userID, productID, size string, quantity int) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return &NotFoundError{Resource: "User"}
	}

	cart := user.CartData
	if cart == nil {
		cart = models.CartData{}
	}

	sizes := cart[productID]
	if quantity > 0 {
		if sizes == nil {
			sizes = map[string]int{}
		}
		sizes[size] = quantity
		cart[productID] = sizes
	} else {
		delete(sizes, size)
		if len(sizes) == 0 {
			delete(cart, productID)
		}
	}

	return s.users.UpdateCart(ctx, userID, cart)
}

// GetCart returns the current cart snapshot.
func (s *CartService) GetCart(ctx context.Context, userID string) (models.CartData, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Resource: "User"}
	}
	if user.CartData == nil {
		return models.CartData{}, nil
	}
	return user.CartData, nil
}
