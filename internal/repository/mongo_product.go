package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoProductLookup reads the catalog's products collection. The catalog is
// owned elsewhere; this subsystem only ever looks products up by id.
type mongoProductLookup struct {
	collection *mongo.Collection
}

func NewMongoProductLookup(db *mongo.Database) ProductLookup {
	return &mongoProductLookup{
		collection: db.Collection("products"),
	}
}

func (m *mongoProductLookup) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	var product domain.Product

	filter := bson.M{"_id": productID}
	err := m.collection.FindOne(ctx, filter).Decode(&product)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &product, nil
}
