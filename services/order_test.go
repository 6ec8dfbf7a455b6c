package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopprr-backend/models"
)

func orderFixtures(t *testing.T) (*fakeOrderStore, *fakeProductStore, *fakeUserStore, *OrderService, string) {
	t.Helper()
	orders := newFakeOrderStore()
	products := newFakeProductStore()
	users := newFakeUserStore()
	userID := users.add(&models.User{Name: "Ana", Email: "ana@example.com"})
	return orders, products, users, NewOrderService(orders, products, users), userID
}

func TestOrderCreateSnapshotsOfferPrice(t *testing.T) {
	orders, products, _, svc, userID := orderFixtures(t)
	p1 := products.add(&models.Product{Name: "Tee", Price: 30, OfferPrice: 25})
	p2 := products.add(&models.Product{Name: "Hoodie", Price: 60, OfferPrice: 60})

	order, err := svc.Create(context.Background(), userID, []models.OrderItem{
		{Product: p1, Quantity: 2, Size: "M"},
		{Product: p2, Quantity: 1, Size: "L"},
	}, models.Address{City: "Lagos"}, models.PaymentCOD)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, 25.0, order.Items[0].Price)
	assert.Equal(t, 60.0, order.Items[1].Price)
	assert.Equal(t, 110.0, order.TotalAmount)
	assert.Equal(t, 1, orders.inserts)
	assert.False(t, order.CreatedAt.IsZero())

	// Later catalog price changes must not affect the stored order.
	stored := products.products[p1]
	stored.OfferPrice = 10
	kept, err := orders.FindByID(context.Background(), order.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 25.0, kept.Items[0].Price)
}

func TestOrderCreateMissingProductFailsWhole(t *testing.T) {
	orders, products, _, svc, userID := orderFixtures(t)
	p1 := products.add(&models.Product{Name: "Tee", Price: 30, OfferPrice: 25})

	_, err := svc.Create(context.Background(), userID, []models.OrderItem{
		{Product: p1, Quantity: 1},
		{Product: "64f000000000000000000000", Quantity: 1},
	}, models.Address{}, models.PaymentCOD)

	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "Product not found: 64f000000000000000000000", err.Error())
	assert.Zero(t, orders.inserts)
}

func TestOrderCreateStripeUnavailable(t *testing.T) {
	orders, products, _, svc, userID := orderFixtures(t)
	p1 := products.add(&models.Product{Name: "Tee", OfferPrice: 25})

	_, err := svc.Create(context.Background(), userID, []models.OrderItem{
		{Product: p1, Quantity: 1},
	}, models.Address{}, models.PaymentStripe)

	assert.ErrorIs(t, err, ErrStripeNotAvailable)
	assert.Zero(t, orders.inserts)
}

func TestOrderCreateValidation(t *testing.T) {
	orders, products, _, svc, userID := orderFixtures(t)
	p1 := products.add(&models.Product{Name: "Tee", OfferPrice: 25})

	_, err := svc.Create(context.Background(), userID, nil, models.Address{}, models.PaymentCOD)
	assert.True(t, IsValidation(err))

	_, err = svc.Create(context.Background(), userID, []models.OrderItem{
		{Product: p1, Quantity: 0},
	}, models.Address{}, models.PaymentCOD)
	assert.True(t, IsValidation(err))
	assert.Zero(t, orders.inserts)
}

func TestOrderUpdatePartialFields(t *testing.T) {
	orders, products, _, svc, userID := orderFixtures(t)
	p1 := products.add(&models.Product{Name: "Tee", OfferPrice: 25})

	order, err := svc.Create(context.Background(), userID, []models.OrderItem{
		{Product: p1, Quantity: 1},
	}, models.Address{City: "Lagos"}, models.PaymentCOD)
	require.NoError(t, err)
	id := order.ID.Hex()

	shipped := models.StatusShipped
	require.NoError(t, svc.Update(context.Background(), id, OrderUpdate{Status: &shipped}))

	stored, err := orders.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusShipped, stored.Status)
	assert.Equal(t, "Lagos", stored.Address.City)
	assert.True(t, stored.UpdatedAt.After(stored.CreatedAt) || stored.UpdatedAt.Equal(stored.CreatedAt))

	addr := models.Address{City: "Abuja"}
	require.NoError(t, svc.Update(context.Background(), id, OrderUpdate{Address: &addr}))
	stored, err = orders.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Abuja", stored.Address.City)
	assert.Equal(t, models.StatusShipped, stored.Status)
}

func TestOrderUpdateStatusUnknownOrder(t *testing.T) {
	_, _, _, svc, _ := orderFixtures(t)
	err := svc.UpdateStatus(context.Background(), "missing", models.StatusShipped)
	assert.True(t, IsNotFound(err))
}

func TestOrderDelete(t *testing.T) {
	orders, products, _, svc, userID := orderFixtures(t)
	p1 := products.add(&models.Product{Name: "Tee", OfferPrice: 25})
	order, err := svc.Create(context.Background(), userID, []models.OrderItem{
		{Product: p1, Quantity: 1},
	}, models.Address{}, models.PaymentCOD)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), order.ID.Hex()))
	assert.Empty(t, orders.orders)

	err = svc.Delete(context.Background(), order.ID.Hex())
	assert.True(t, IsNotFound(err))
}

func TestOrderProjectionDropsMissingProducts(t *testing.T) {
	_, products, _, svc, userID := orderFixtures(t)
	p1 := products.add(&models.Product{Name: "Tee", OfferPrice: 25, Category: "tops"})

	_, err := svc.Create(context.Background(), userID, []models.OrderItem{
		{Product: p1, Quantity: 2, Size: "M"},
	}, models.Address{}, models.PaymentCOD)
	require.NoError(t, err)

	// Second order whose only product disappears from the catalog later.
	ghost := products.add(&models.Product{Name: "Cap", OfferPrice: 10})
	_, err = svc.Create(context.Background(), userID, []models.OrderItem{
		{Product: ghost, Quantity: 1},
	}, models.Address{}, models.PaymentCOD)
	require.NoError(t, err)
	delete(products.products, ghost)

	products.batchCalls = 0
	views, err := svc.ListForUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, 1, products.batchCalls)

	var withItem, without *OrderView
	for i := range views {
		if len(views[i].Items) > 0 {
			withItem = &views[i]
		} else {
			without = &views[i]
		}
	}
	require.NotNil(t, withItem)
	require.NotNil(t, without)

	assert.Equal(t, "Tee", withItem.Items[0].Product.Name)
	assert.Equal(t, 25.0, withItem.Items[0].Price)
	assert.Equal(t, 2, withItem.Items[0].Quantity)
	// The order whose product vanished still appears, with its amount.
	assert.Empty(t, without.Items)
	assert.Equal(t, 10.0, without.Amount)
}
