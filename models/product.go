package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductDetails holds descriptive attributes shown on the product page.
type ProductDetails struct {
	Material string   `bson:"material,omitempty" json:"material,omitempty"`
	Fit      string   `bson:"fit,omitempty" json:"fit,omitempty"`
	Care     string   `bson:"care,omitempty" json:"care,omitempty"`
	Features []string `bson:"features,omitempty" json:"features,omitempty"`
	Weight   string   `bson:"weight,omitempty" json:"weight,omitempty"`
	Origin   string   `bson:"origin,omitempty" json:"origin,omitempty"`
}

// Product is a catalog entry. OfferPrice is the price actually charged:
// equal to Price unless HasDiscount is set, in which case it is
// Price * (1 - DiscountPercent/100).
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Image       []string           `bson:"image" json:"image"`
	Price       float64            `bson:"price" json:"price"`
	OfferPrice  float64            `bson:"offer_price" json:"offerPrice"`
	Category    string             `bson:"category" json:"category"`
	Sizes       []string           `bson:"sizes" json:"sizes"`
	Colors      []string           `bson:"colors,omitempty" json:"colors,omitempty"`
	Details     *ProductDetails    `bson:"details,omitempty" json:"details,omitempty"`
	Popular     bool               `bson:"popular" json:"popular"`
	InStock     bool               `bson:"in_stock" json:"inStock"`

	// Discount window. The window is stored but not enforced on read;
	// an expired discount stays applied until removed explicitly.
	HasDiscount       bool       `bson:"has_discount" json:"hasDiscount"`
	DiscountPercent   float64    `bson:"discount_percent" json:"discountPercent"`
	DiscountStartDate *time.Time `bson:"discount_start_date,omitempty" json:"discountStartDate,omitempty"`
	DiscountEndDate   *time.Time `bson:"discount_end_date,omitempty" json:"discountEndDate,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
