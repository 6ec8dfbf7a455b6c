package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shopprr-backend/models"
)

// Reviews wraps the reviews collection.
type Reviews struct {
	col *mongo.Collection
}

func NewReviews(db *mongo.Database) *Reviews {
	return &Reviews{col: db.Collection("reviews")}
}

func (s *Reviews) Insert(ctx context.Context, review *models.Review) (string, error) {
	res, err := s.col.InsertOne(ctx, review)
	if err != nil {
		return "", err
	}
	review.ID = res.InsertedID.(primitive.ObjectID)
	return review.ID.Hex(), nil
}

// FindByProduct returns reviews newest first.
func (s *Reviews) FindByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	return s.find(ctx, bson.M{"product_id": productID})
}

func (s *Reviews) FindByUser(ctx context.Context, userID string) ([]models.Review, error) {
	return s.find(ctx, bson.M{"user_id": userID})
}

func (s *Reviews) find(ctx context.Context, filter bson.M) ([]models.Review, error) {
	cursor, err := s.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Delete reports whether a document was removed.
func (s *Reviews) Delete(ctx context.Context, id string) (bool, error) {
	docID, ok := oid(id)
	if !ok {
		return false, nil
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": docID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
