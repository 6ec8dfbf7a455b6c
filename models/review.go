package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a customer review for a product. UserName and UserAvatar are
// denormalized from the author at creation time and are not kept in sync
// with later profile edits. Reviews are never updated in place.
type Review struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductID  string             `bson:"product_id" json:"productId"`
	UserID     string             `bson:"user_id" json:"userId"`
	Rating     int                `bson:"rating" json:"rating"`
	Title      string             `bson:"title" json:"title"`
	Comment    string             `bson:"comment" json:"comment"`
	UserName   string             `bson:"user_name" json:"userName"`
	UserAvatar string             `bson:"user_avatar" json:"userAvatar"`
	Verified   bool               `bson:"verified" json:"verified"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`
}
