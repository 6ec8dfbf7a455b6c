package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"shopprr-backend/models"
	"shopprr-backend/services"
	"shopprr-backend/store"
)

// ProductController handles catalog reads, product management, and the
// bulk discount endpoints.
type ProductController struct {
	Products  *store.Products
	Discounts *services.DiscountService
	Logger    *zap.Logger
}

func NewProductController(products *store.Products, discounts *services.DiscountService, logger *zap.Logger) *ProductController {
	return &ProductController{Products: products, Discounts: discounts, Logger: logger}
}

// List returns the full catalog.
func (pc *ProductController) List(w http.ResponseWriter, r *http.Request) {
	products, err := pc.Products.List(r.Context())
	if err != nil {
		respondError(w, "Error fetching products", err)
		return
	}
	respondOK(w, "Products fetched successfully", products)
}

// GetByID returns a single product.
func (pc *ProductController) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	product, err := pc.Products.FindByID(r.Context(), id)
	if err != nil {
		respondError(w, "Error fetching product", err)
		return
	}
	if product == nil {
		respondFail(w, http.StatusNotFound, "Product not found")
		return
	}
	respondOK(w, "Product found", product)
}

// ByCategory returns the products in one category.
func (pc *ProductController) ByCategory(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]
	products, err := pc.Products.ListByCategory(r.Context(), category)
	if err != nil {
		respondError(w, "Error fetching products", err)
		return
	}
	respondOK(w, "Products fetched successfully", products)
}

// Popular returns the products flagged popular.
func (pc *ProductController) Popular(w http.ResponseWriter, r *http.Request) {
	products, err := pc.Products.ListPopular(r.Context())
	if err != nil {
		respondError(w, "Error fetching popular products", err)
		return
	}
	respondOK(w, "Popular products fetched successfully", products)
}

// Create stores a new product. When no offer price is given it defaults
// to the base price so the offer-price invariant holds from the start.
func (pc *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if !decodeBody(w, r, &product) {
		return
	}
	if product.Name == "" || product.Price <= 0 {
		respondFail(w, http.StatusBadRequest, "Product name and a positive price are required")
		return
	}
	if product.OfferPrice == 0 {
		product.OfferPrice = product.Price
	}
	now := time.Now()
	product.HasDiscount = false
	product.CreatedAt = now
	product.UpdatedAt = now

	if _, err := pc.Products.Insert(r.Context(), &product); err != nil {
		respondError(w, "Error adding product", err)
		return
	}
	respondCreated(w, "Product added successfully", product)
}

// productUpdate enumerates every product field an update may change.
type productUpdate struct {
	ProductID   string                 `json:"productId"`
	Name        *string                `json:"name"`
	Description *string                `json:"description"`
	Image       *[]string              `json:"image"`
	Price       *float64               `json:"price"`
	Category    *string                `json:"category"`
	Sizes       *[]string              `json:"sizes"`
	Colors      *[]string              `json:"colors"`
	Details     *models.ProductDetails `json:"details"`
	Popular     *bool                  `json:"popular"`
	InStock     *bool                  `json:"inStock"`
}

// Update applies a partial update. Changing the price recomputes the
// offer price, honoring any active discount.
func (pc *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	var req productUpdate
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ProductID == "" {
		respondFail(w, http.StatusBadRequest, "Product ID is required")
		return
	}

	product, err := pc.Products.FindByID(r.Context(), req.ProductID)
	if err != nil {
		respondError(w, "Error updating product", err)
		return
	}
	if product == nil {
		respondFail(w, http.StatusNotFound, "Product not found")
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Price != nil {
		product.Price = *req.Price
		if product.HasDiscount {
			product.OfferPrice = product.Price * (1 - product.DiscountPercent/100)
		} else {
			product.OfferPrice = product.Price
		}
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Sizes != nil {
		product.Sizes = *req.Sizes
	}
	if req.Colors != nil {
		product.Colors = *req.Colors
	}
	if req.Details != nil {
		product.Details = req.Details
	}
	if req.Popular != nil {
		product.Popular = *req.Popular
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	product.UpdatedAt = time.Now()

	if err := pc.Products.Update(r.Context(), req.ProductID, product); err != nil {
		respondError(w, "Error updating product", err)
		return
	}
	respondOK(w, "Product updated successfully", product)
}

// Delete removes a product permanently. Orders keep their snapshots;
// projections drop lines whose product is gone.
func (pc *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ProductID == "" {
		respondFail(w, http.StatusBadRequest, "Product ID is required")
		return
	}

	deleted, err := pc.Products.Delete(r.Context(), req.ProductID)
	if err != nil {
		respondError(w, "Error deleting product", err)
		return
	}
	if !deleted {
		respondFail(w, http.StatusNotFound, "Product not found")
		return
	}
	respondOK(w, "Product deleted successfully", nil)
}

// ApplyDiscount applies a percentage discount across a batch of
// products.
func (pc *ProductController) ApplyDiscount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductIDs      []string `json:"productIds"`
		DiscountPercent float64  `json:"discountPercent"`
		StartDate       string   `json:"startDate"`
		EndDate         string   `json:"endDate"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := pc.Discounts.Apply(r.Context(), req.ProductIDs, req.DiscountPercent, req.StartDate, req.EndDate)
	if err != nil {
		respondError(w, "Error applying discount", err)
		return
	}
	pc.Logger.Info("discount applied",
		zap.Float64("percent", req.DiscountPercent), zap.Int("updated", updated))
	respondOK(w, fmt.Sprintf("Discount applied successfully to %d products", updated), nil)
}

// RemoveDiscount clears the discount across a batch of products.
func (pc *ProductController) RemoveDiscount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductIDs []string `json:"productIds"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := pc.Discounts.Remove(r.Context(), req.ProductIDs)
	if err != nil {
		respondError(w, "Error removing discount", err)
		return
	}
	respondOK(w, fmt.Sprintf("Discount removed successfully from %d products", updated), nil)
}
