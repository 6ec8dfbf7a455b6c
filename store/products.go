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

// Products wraps the products collection.
type Products struct {
	col *mongo.Collection
}

func NewProducts(db *mongo.Database) *Products {
	return &Products{col: db.Collection("products")}
}

func (s *Products) List(ctx context.Context) ([]models.Product, error) {
	return s.find(ctx, bson.M{})
}

func (s *Products) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return s.find(ctx, bson.M{"category": category})
}

func (s *Products) ListPopular(ctx context.Context) ([]models.Product, error) {
	return s.find(ctx, bson.M{"popular": true})
}

func (s *Products) find(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cursor, err := s.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID returns (nil, nil) when no product matches.
func (s *Products) FindByID(ctx context.Context, id string) (*models.Product, error) {
	docID, ok := oid(id)
	if !ok {
		return nil, nil
	}
	var product models.Product
	err := s.col.FindOne(ctx, bson.M{"_id": docID}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByIDs resolves a batch of product ids in a single query. Malformed
// and unknown ids are simply absent from the result.
func (s *Products) FindByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	docIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if docID, ok := oid(id); ok {
			docIDs = append(docIDs, docID)
		}
	}
	if len(docIDs) == 0 {
		return nil, nil
	}
	cursor, err := s.col.Find(ctx, bson.M{"_id": bson.M{"$in": docIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Products) Insert(ctx context.Context, product *models.Product) (string, error) {
	res, err := s.col.InsertOne(ctx, product)
	if err != nil {
		return "", err
	}
	product.ID = res.InsertedID.(primitive.ObjectID)
	return product.ID.Hex(), nil
}

// Update replaces the whole product document.
func (s *Products) Update(ctx context.Context, id string, product *models.Product) error {
	docID, ok := oid(id)
	if !ok {
		return mongo.ErrNoDocuments
	}
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": docID}, product)
	return err
}

// Delete reports whether a document was removed.
func (s *Products) Delete(ctx context.Context, id string) (bool, error) {
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
