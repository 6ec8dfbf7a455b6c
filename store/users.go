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

// Users wraps the users collection.
type Users struct {
	col *mongo.Collection
}

func NewUsers(db *mongo.Database) *Users {
	return &Users{col: db.Collection("users")}
}

// FindByID returns (nil, nil) when no user matches.
func (s *Users) FindByID(ctx context.Context, id string) (*models.User, error) {
	docID, ok := oid(id)
	if !ok {
		return nil, nil
	}
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"_id": docID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns (nil, nil) when no user matches.
func (s *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Users) Insert(ctx context.Context, user *models.User) (string, error) {
	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		return "", err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return user.ID.Hex(), nil
}

// Update replaces the whole user document.
func (s *Users) Update(ctx context.Context, id string, user *models.User) error {
	docID, ok := oid(id)
	if !ok {
		return mongo.ErrNoDocuments
	}
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": docID}, user)
	return err
}

// UpdateCart persists the full cart snapshot back to the user document.
// Last write wins.
func (s *Users) UpdateCart(ctx context.Context, id string, cart models.CartData) error {
	docID, ok := oid(id)
	if !ok {
		return mongo.ErrNoDocuments
	}
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": docID}, bson.M{
		"$set": bson.M{"cart_data": cart},
	})
	return err
}

func (s *Users) List(ctx context.Context) ([]models.User, error) {
	cursor, err := s.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Delete reports whether a document was removed.
func (s *Users) Delete(ctx context.Context, id string) (bool, error) {
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
