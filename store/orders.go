package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shopprr-backend/models"
)

// Orders wraps the orders collection.
type Orders struct {
	col *mongo.Collection
}

func NewOrders(db *mongo.Database) *Orders {
	return &Orders{col: db.Collection("orders")}
}

func (s *Orders) Insert(ctx context.Context, order *models.Order) (string, error) {
	res, err := s.col.InsertOne(ctx, order)
	if err != nil {
		return "", err
	}
	order.ID = res.InsertedID.(primitive.ObjectID)
	return order.ID.Hex(), nil
}

// FindByID returns (nil, nil) when no order matches.
func (s *Orders) FindByID(ctx context.Context, id string) (*models.Order, error) {
	docID, ok := oid(id)
	if !ok {
		return nil, nil
	}
	var order models.Order
	err := s.col.FindOne(ctx, bson.M{"_id": docID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Orders) FindByUser(ctx context.Context, userID string) ([]models.Order, error) {
	docID, ok := oid(userID)
	if !ok {
		return nil, nil
	}
	return s.find(ctx, bson.M{"user_id": docID})
}

func (s *Orders) FindAll(ctx context.Context) ([]models.Order, error) {
	return s.find(ctx, bson.M{})
}

func (s *Orders) find(ctx context.Context, filter bson.M) ([]models.Order, error) {
	cursor, err := s.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Update replaces the whole order document.
func (s *Orders) Update(ctx context.Context, id string, order *models.Order) error {
	docID, ok := oid(id)
	if !ok {
		return mongo.ErrNoDocuments
	}
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": docID}, order)
	return err
}

// Delete reports whether a document was removed.
func (s *Orders) Delete(ctx context.Context, id string) (bool, error) {
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
