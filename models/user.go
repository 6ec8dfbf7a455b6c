package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles. A user holds exactly one role.
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

// CartData maps product id -> size label -> quantity. A size entry with a
// non-positive quantity must never be stored; a product key with no size
// entries must never be stored.
type CartData map[string]map[string]int

// User represents an account in the system. The user owns its cart data
// exclusively; cart writes replace the whole map.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	Password      string             `bson:"password,omitempty" json:"-"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address       string             `bson:"address,omitempty" json:"address,omitempty"`
	Age           int                `bson:"age,omitempty" json:"age,omitempty"`
	DateOfBirth   string             `bson:"date_of_birth,omitempty" json:"dateOfBirth,omitempty"`
	Gender        string             `bson:"gender,omitempty" json:"gender,omitempty"`
	CartData      CartData           `bson:"cart_data" json:"cartData"`
	Role          string             `bson:"role" json:"role"`
	EmailVerified bool               `bson:"email_verified" json:"emailVerified"`
	IsActive      bool               `bson:"is_active" json:"isActive"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}
