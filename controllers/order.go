package controllers

import (
	"net/http"

	"go.uber.org/zap"

	"shopprr-backend/middleware"
	"shopprr-backend/models"
	"shopprr-backend/services"
	"shopprr-backend/utils"
)

// OrderController handles checkout and the order lifecycle endpoints.
type OrderController struct {
	Orders *services.OrderService
	Email  *utils.EmailService
	Logger *zap.Logger
}

func NewOrderController(orders *services.OrderService, email *utils.EmailService, logger *zap.Logger) *OrderController {
	return &OrderController{Orders: orders, Email: email, Logger: logger}
}

type orderRequest struct {
	Items   []models.OrderItem `json:"items"`
	Address models.Address     `json:"address"`
}

// PlaceCOD places a cash-on-delivery order and sends a best-effort
// confirmation email.
func (oc *OrderController) PlaceCOD(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user := middleware.UserFrom(r.Context())
	order, err := oc.Orders.Create(r.Context(), user.ID.Hex(), req.Items, req.Address, models.PaymentCOD)
	if err != nil {
		respondError(w, "Error placing order", err)
		return
	}

	go func(email, name, orderID string, amount float64) {
		if err := oc.Email.SendOrderConfirmation(email, name, orderID, amount); err != nil {
			oc.Logger.Warn("order confirmation email failed",
				zap.String("order_id", orderID), zap.Error(err))
		}
	}(user.Email, user.Name, order.ID.Hex(), order.TotalAmount)

	respondOK(w, "Order placed successfully", map[string]interface{}{
		"orderId": order.ID.Hex(),
		"status":  order.Status,
	})
}

// PlaceStripe is the card checkout path. The gateway is not integrated;
// the engine reports it distinctly and this maps to 501.
func (oc *OrderController) PlaceStripe(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user := middleware.UserFrom(r.Context())
	order, err := oc.Orders.Create(r.Context(), user.ID.Hex(), req.Items, req.Address, models.PaymentStripe)
	if err != nil {
		respondError(w, "Error processing Stripe payment", err)
		return
	}
	respondOK(w, "Order placed successfully", map[string]interface{}{
		"orderId": order.ID.Hex(),
		"status":  order.Status,
	})
}

// UserOrders lists the caller's orders projected for display.
func (oc *OrderController) UserOrders(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	orders, err := oc.Orders.ListForUser(r.Context(), user.ID.Hex())
	if err != nil {
		respondError(w, "Error retrieving orders", err)
		return
	}
	respondOK(w, "Orders retrieved successfully", map[string]interface{}{"orders": orders})
}

// ListAll lists every order. Admin console only.
func (oc *OrderController) ListAll(w http.ResponseWriter, r *http.Request) {
	orders, err := oc.Orders.ListAll(r.Context())
	if err != nil {
		respondError(w, "Error retrieving orders", err)
		return
	}
	respondOK(w, "Orders retrieved successfully", map[string]interface{}{"orders": orders})
}

// UpdateStatus overwrites an order's status.
func (oc *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID string `json:"orderId"`
		Status  string `json:"status"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.OrderID == "" {
		respondFail(w, http.StatusBadRequest, "Order ID is required")
		return
	}

	if err := oc.Orders.UpdateStatus(r.Context(), req.OrderID, req.Status); err != nil {
		respondError(w, "Error updating order", err)
		return
	}
	respondOK(w, "Order status updated", nil)
}

// Update applies a partial update; absent fields are left untouched.
func (oc *OrderController) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID string          `json:"orderId"`
		Address *models.Address `json:"address"`
		Status  *string         `json:"status"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.OrderID == "" {
		respondFail(w, http.StatusBadRequest, "Order ID is required")
		return
	}

	update := services.OrderUpdate{Address: req.Address, Status: req.Status}
	if err := oc.Orders.Update(r.Context(), req.OrderID, update); err != nil {
		respondError(w, "Error updating order", err)
		return
	}
	respondOK(w, "Order updated successfully", nil)
}

// Delete removes an order permanently.
func (oc *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID string `json:"orderId"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.OrderID == "" {
		respondFail(w, http.StatusBadRequest, "Order ID is required")
		return
	}

	if err := oc.Orders.Delete(r.Context(), req.OrderID); err != nil {
		respondError(w, "Error deleting order", err)
		return
	}
	respondOK(w, "Order deleted successfully", nil)
}
