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

// Categories wraps the categories collection.
type Categories struct {
	col *mongo.Collection
}

func NewCategories(db *mongo.Database) *Categories {
	return &Categories{col: db.Collection("categories")}
}

func (s *Categories) ListActive(ctx context.Context) ([]models.Category, error) {
	cursor, err := s.col.Find(ctx, bson.M{"is_active": true}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// FindByID returns (nil, nil) when no category matches.
func (s *Categories) FindByID(ctx context.Context, id string) (*models.Category, error) {
	docID, ok := oid(id)
	if !ok {
		return nil, nil
	}
	return s.findOne(ctx, bson.M{"_id": docID})
}

// FindBySlug returns (nil, nil) when no category matches.
func (s *Categories) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.findOne(ctx, bson.M{"slug": slug})
}

func (s *Categories) findOne(ctx context.Context, filter bson.M) (*models.Category, error) {
	var category models.Category
	err := s.col.FindOne(ctx, filter).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *Categories) Insert(ctx context.Context, category *models.Category) (string, error) {
	res, err := s.col.InsertOne(ctx, category)
	if err != nil {
		return "", err
	}
	category.ID = res.InsertedID.(primitive.ObjectID)
	return category.ID.Hex(), nil
}

// Update replaces the whole category document.
func (s *Categories) Update(ctx context.Context, id string, category *models.Category) error {
	docID, ok := oid(id)
	if !ok {
		return mongo.ErrNoDocuments
	}
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": docID}, category)
	return err
}

// Delete reports whether a document was removed.
func (s *Categories) Delete(ctx context.Context, id string) (bool, error) {
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
