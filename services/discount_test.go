package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopprr-backend/models"
)

func TestDiscountApplyRecomputesOfferPrice(t *testing.T) {
	products := newFakeProductStore()
	p1 := products.add(&models.Product{Name: "Tee", Price: 100, OfferPrice: 100})
	p2 := products.add(&models.Product{Name: "Hoodie", Price: 80, OfferPrice: 80})
	svc := NewDiscountService(products)

	updated, err := svc.Apply(context.Background(), []string{p1, p2}, 25, "2026-09-01", "2026-09-07")
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	first, err := products.FindByID(context.Background(), p1)
	require.NoError(t, err)
	assert.True(t, first.HasDiscount)
	assert.Equal(t, 25.0, first.DiscountPercent)
	assert.Equal(t, 75.0, first.OfferPrice)
	require.NotNil(t, first.DiscountStartDate)
	require.NotNil(t, first.DiscountEndDate)
	assert.Equal(t, 0, first.DiscountStartDate.Hour())
	assert.Equal(t, 23, first.DiscountEndDate.Hour())
	assert.Equal(t, 59, first.DiscountEndDate.Second())

	second, err := products.FindByID(context.Background(), p2)
	require.NoError(t, err)
	assert.Equal(t, 60.0, second.OfferPrice)
}

func TestDiscountApplyRejectsBadPercent(t *testing.T) {
	products := newFakeProductStore()
	p1 := products.add(&models.Product{Name: "Tee", Price: 100, OfferPrice: 100})
	svc := NewDiscountService(products)

	for _, percent := range []float64{0, -5, 100.5} {
		updated, err := svc.Apply(context.Background(), []string{p1}, percent, "2026-09-01", "2026-09-07")
		assert.True(t, IsValidation(err), "percent %v", percent)
		assert.Zero(t, updated)
	}
	assert.Zero(t, products.updates)

	// 100 percent is allowed and makes the product free.
	updated, err := svc.Apply(context.Background(), []string{p1}, 100, "2026-09-01", "2026-09-07")
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
	product, _ := products.FindByID(context.Background(), p1)
	assert.Equal(t, 0.0, product.OfferPrice)
}

func TestDiscountApplyRejectsBadWindow(t *testing.T) {
	products := newFakeProductStore()
	p1 := products.add(&models.Product{Name: "Tee", Price: 100, OfferPrice: 100})
	svc := NewDiscountService(products)

	_, err := svc.Apply(context.Background(), []string{p1}, 10, "not-a-date", "2026-09-07")
	assert.True(t, IsValidation(err))

	_, err = svc.Apply(context.Background(), []string{p1}, 10, "2026-09-07", "2026-09-01")
	assert.True(t, IsValidation(err))

	_, err = svc.Apply(context.Background(), nil, 10, "2026-09-01", "2026-09-07")
	assert.True(t, IsValidation(err))
	assert.Zero(t, products.updates)
}

func TestDiscountApplySkipsUnknownProducts(t *testing.T) {
	products := newFakeProductStore()
	p1 := products.add(&models.Product{Name: "Tee", Price: 100, OfferPrice: 100})
	svc := NewDiscountService(products)

	updated, err := svc.Apply(context.Background(), []string{"missing", p1}, 10, "2026-09-01", "2026-09-07")
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
}

func TestDiscountRemoveRestoresBasePrice(t *testing.T) {
	products := newFakeProductStore()
	p1 := products.add(&models.Product{Name: "Tee", Price: 100, OfferPrice: 100})
	svc := NewDiscountService(products)

	_, err := svc.Apply(context.Background(), []string{p1}, 40, "2026-09-01", "2026-09-07")
	require.NoError(t, err)

	updated, err := svc.Remove(context.Background(), []string{p1, "missing"})
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	product, err := products.FindByID(context.Background(), p1)
	require.NoError(t, err)
	assert.False(t, product.HasDiscount)
	assert.Equal(t, 0.0, product.DiscountPercent)
	assert.Nil(t, product.DiscountStartDate)
	assert.Nil(t, product.DiscountEndDate)
	assert.Equal(t, 100.0, product.OfferPrice)
}
