package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment methods accepted at checkout. Stripe is not wired to a gateway
// and always fails with a distinct not-available error.
const (
	PaymentCOD    = "COD"
	PaymentStripe = "Stripe"
)

// Order statuses. The forward path is pending -> processing -> shipped ->
// delivered, with cancelled reachable from any non-terminal state. The
// engine does not enforce transition legality; the admin console is the
// only gate.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// OrderItem is a single line of an order. Price is the product's offer
// price captured at order-creation time and never changes afterwards.
type OrderItem struct {
	Product  string  `bson:"product" json:"product"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Size     string  `bson:"size" json:"size"`
	Price    float64 `bson:"price" json:"price"`
}

// Address is the shipping contact block, copied into the order.
type Address struct {
	FirstName string `bson:"first_name" json:"firstName"`
	LastName  string `bson:"last_name" json:"lastName"`
	Email     string `bson:"email" json:"email"`
	Street    string `bson:"street" json:"street"`
	City      string `bson:"city" json:"city"`
	State     string `bson:"state" json:"state"`
	Zipcode   string `bson:"zipcode" json:"zipcode"`
	Country   string `bson:"country" json:"country"`
	Phone     string `bson:"phone" json:"phone"`
}

// Order represents a placed order. TotalAmount equals the sum of
// item.Price * item.Quantity over Items.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID        primitive.ObjectID `bson:"user_id" json:"userId"`
	Items         []OrderItem        `bson:"items" json:"items"`
	Address       Address            `bson:"address" json:"address"`
	PaymentMethod string             `bson:"payment_method" json:"paymentMethod"`
	TotalAmount   float64            `bson:"total_amount" json:"totalAmount"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}
