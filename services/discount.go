package services

import (
	"context"
	"time"
)

// DiscountService applies and removes time-windowed percentage discounts
// across batches of products. The stored window is informational only;
// nothing reverts a discount when the end date passes.
type DiscountService struct {
	products ProductStore
}

func NewDiscountService(products ProductStore) *DiscountService {
	return &DiscountService{products: products}
}

// Apply sets the discount on every resolvable product and recomputes its
// offer price. Percent outside (0,100] is rejected before any product is
// touched; unresolvable ids are skipped, not failed. The window spans
// startDate at 00:00:00 through endDate at 23:59:59, both "2006-01-02".
// Returns the number of products actually updated.
func (s *DiscountService) Apply(ctx context.Context, productIDs []string, percent float64, startDate, endDate string) (int, error) {
	if len(productIDs) == 0 {
		return 0, &ValidationError{Field: "productIds", Message: "Product IDs are required"}
	}
	if percent <= 0 || percent > 100 {
		return 0, &ValidationError{Field: "discountPercent", Message: "Discount percent must be between 1 and 100"}
	}

	start, err := time.Parse("2006-01-02T15:04:05", startDate+"T00:00:00")
	if err != nil {
		return 0, &ValidationError{Field: "startDate", Message: "Start date must be in YYYY-MM-DD format"}
	}
	end, err := time.Parse("2006-01-02T15:04:05", endDate+"T23:59:59")
	if err != nil {
		return 0, &ValidationError{Field: "endDate", Message: "End date must be in YYYY-MM-DD format"}
	}
	if end.Before(start) {
		return 0, &ValidationError{Field: "endDate", Message: "End date must not be before start date"}
	}

	updated := 0
	for _, id := range productIDs {
		product, err := s.products.FindByID(ctx, id)
		if err != nil {
			return updated, err
		}
		if product == nil {
			continue
		}

		product.HasDiscount = true
		product.DiscountPercent = percent
		product.DiscountStartDate = &start
		product.DiscountEndDate = &end
		product.OfferPrice = product.Price * (1 - percent/100)
		product.UpdatedAt = time.Now()

		if err := s.products.Update(ctx, id, product); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

// Remove clears the discount on every resolvable product and resets its
// offer price to the base price. Returns the number of products updated.
func (s *DiscountService) Remove(ctx context.Context, productIDs []string) (int, error) {
	if len(productIDs) == 0 {
		return 0, &ValidationError{Field: "productIds", Message: "Product IDs are required"}
	}

	updated := 0
	for _, id := range productIDs {
		product, err := s.products.FindByID(ctx, id)
		if err != nil {
			return updated, err
		}
		if product == nil {
			continue
		}

		product.HasDiscount = false
		product.DiscountPercent = 0
		product.DiscountStartDate = nil
		product.DiscountEndDate = nil
		product.OfferPrice = product.Price
		product.UpdatedAt = time.Now()

		if err := s.products.Update(ctx, id, product); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}
