package services

import (
	"context"
	"time"

	"shopprr-backend/models"
)

// OrderService creates orders with price snapshots, manages the status
// lifecycle, and projects orders into a display-ready shape.
type OrderService struct {
	orders   OrderStore
	products ProductStore
	users    UserStore
}

func NewOrderService(orders OrderStore, products ProductStore, users UserStore) *OrderService {
	return &OrderService{orders: orders, products: products, users: users}
}

// OrderUpdate enumerates the fields an order update may change. Nil
// fields are left untouched.
type OrderUpdate struct {
	Address *models.Address
	Status  *string
}

// ProductInfo is the catalog slice attached to a projected order item.
type ProductInfo struct {
	ID         string   `json:"_id"`
	Name       string   `json:"name"`
	Image      []string `json:"image"`
	OfferPrice float64  `json:"offerPrice"`
	Category   string   `json:"category"`
}

// OrderItemView pairs an order line with its current product info. Price
// is the snapshot taken at order creation, not the current offer price.
type OrderItemView struct {
	Product  ProductInfo `json:"product"`
	Quantity int         `json:"quantity"`
	Size     string      `json:"size"`
	Price    float64     `json:"price"`
}

// OrderView is the display-ready projection of an order.
type OrderView struct {
	ID            string          `json:"_id"`
	Items         []OrderItemView `json:"items"`
	Address       models.Address  `json:"address"`
	PaymentMethod string          `json:"paymentMethod"`
	Amount        float64         `json:"amount"`
	Status        string          `json:"status"`
	IsPaid        bool            `json:"isPaid"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Create places an order for the user. Every product is resolved up
// front and its offer price snapshotted into the item; any missing
// product fails the whole order before anything is persisted. The Stripe
// path is not wired to a gateway and fails distinctly.
func (s *OrderService) Create(ctx context.Context, userID string, items []models.OrderItem, address models.Address, paymentMethod string) (*models.Order, error) {
	if paymentMethod == models.PaymentStripe {
		return nil, ErrStripeNotAvailable
	}
	if len(items) == 0 {
		return nil, &ValidationError{Field: "items", Message: "Order items are required"}
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Resource: "User"}
	}

	total := 0.0
	for i := range items {
		if items[i].Quantity < 1 {
			return nil, &ValidationError{Field: "quantity", Message: "Quantity must be at least 1"}
		}
		product, err := s.products.FindByID(ctx, items[i].Product)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, &NotFoundError{Resource: "Product", ID: items[i].Product}
		}
		items[i].Price = product.OfferPrice
		total += product.OfferPrice * float64(items[i].Quantity)
	}

	now := time.Now()
	order := &models.Order{
		UserID:        user.ID,
		Items:         items,
		Address:       address,
		PaymentMethod: paymentMethod,
		TotalAmount:   total,
		Status:        models.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if _, err := s.orders.Insert(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus overwrites the order status. Transition legality is not
// enforced; the admin console is the only gate.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) error {
	return s.Update(ctx, orderID, OrderUpdate{Status: &status})
}

// Update applies the provided fields only and bumps updatedAt.
func (s *OrderService) Update(ctx context.Context, orderID string, update OrderUpdate) error {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return &NotFoundError{Resource: "Order"}
	}

	if update.Address != nil {
		order.Address = *update.Address
	}
	if update.Status != nil {
		order.Status = *update.Status
	}
	order.UpdatedAt = time.Now()

	return s.orders.Update(ctx, orderID, order)
}

// Delete removes an order permanently.
func (s *OrderService) Delete(ctx context.Context, orderID string) error {
	deleted, err := s.orders.Delete(ctx, orderID)
	if err != nil {
		return err
	}
	if !deleted {
		return &NotFoundError{Resource: "Order"}
	}
	return nil
}

// ListForUser returns the user's orders projected for display.
func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]OrderView, error) {
	orders, err := s.orders.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.project(ctx, orders)
}

// ListAll returns every order projected for display.
func (s *OrderService) ListAll(ctx context.Context) ([]OrderView, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.project(ctx, orders)
}

// project batch-resolves every referenced product in one query and pairs
// each order line with its product info. Lines whose product no longer
// exists are dropped from the projection; the order itself survives.
func (s *OrderService) project(ctx context.Context, orders []models.Order) ([]OrderView, error) {
	seen := map[string]bool{}
	var ids []string
	for _, order := range orders {
		for _, item := range order.Items {
			if !seen[item.Product] {
				seen[item.Product] = true
				ids = append(ids, item.Product)
			}
		}
	}

	byID := map[string]models.Product{}
	if len(ids) > 0 {
		products, err := s.products.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			byID[p.ID.Hex()] = p
		}
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		view := OrderView{
			ID:            order.ID.Hex(),
			Items:         []OrderItemView{},
			Address:       order.Address,
			PaymentMethod: order.PaymentMethod,
			Amount:        order.TotalAmount,
			Status:        order.Status,
			CreatedAt:     order.CreatedAt,
			UpdatedAt:     order.UpdatedAt,
		}
		for _, item := range order.Items {
			product, ok := byID[item.Product]
			if !ok {
				continue
			}
			view.Items = append(view.Items, OrderItemView{
				Product: ProductInfo{
					ID:         product.ID.Hex(),
					Name:       product.Name,
					Image:      product.Image,
					OfferPrice: product.OfferPrice,
					Category:   product.Category,
				},
				Quantity: item.Quantity,
				Size:     item.Size,
				Price:    item.Price,
			})
		}
		views = append(views, view)
	}
	return views, nil
}
