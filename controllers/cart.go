package controllers

import (
	"net/http"

	"shopprr-backend/middleware"
	"shopprr-backend/services"
)

// CartController handles cart reads and incremental updates.
type CartController struct {
	Carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{Carts: carts}
}

type cartRequest struct {
	ItemID   string `json:"itemId"`
	Size     string `json:"size"`
	Quantity *int   `json:"quantity"`
}

// Add puts an item in the cart. A missing quantity defaults to 1.
func (cc *CartController) Add(w http.ResponseWriter, r *http.Request) {
	var req cartRequest
	if !decodeBody(w, r, &req) {
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	user := middleware.UserFrom(r.Context())
	if err := cc.Carts.SetItem(r.Context(), user.ID.Hex(), req.ItemID, req.Size, quantity); err != nil {
		respondError(w, "Error adding to cart", err)
		return
	}
	respondOK(w, "Item added to cart successfully", nil)
}

// Update sets the exact quantity for an item/size. A missing or
// non-positive quantity removes the entry.
func (cc *CartController) Update(w http.ResponseWriter, r *http.Request) {
	var req cartRequest
	if !decodeBody(w, r, &req) {
		return
	}
	quantity := 0
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	user := middleware.UserFrom(r.Context())
	if err := cc.Carts.SetItem(r.Context(), user.ID.Hex(), req.ItemID, req.Size, quantity); err != nil {
		respondError(w, "Error updating cart", err)
		return
	}
	respondOK(w, "Cart updated successfully", nil)
}

// Get returns the current cart snapshot.
func (cc *CartController) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	cart, err := cc.Carts.GetCart(r.Context(), user.ID.Hex())
	if err != nil {
		respondError(w, "Error fetching cart", err)
		return
	}
	respondOK(w, "Cart fetched successfully", cart)
}
