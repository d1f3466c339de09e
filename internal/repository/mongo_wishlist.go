package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NirbhayArora1209/dhanlaxmi-saree-sadan-sub000/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoWishlistRepository struct {
	collection *mongo.Collection
}

func NewMongoWishlistRepository(db *mongo.Database) WishlistRepository {
	return &mongoWishlistRepository{
		collection: db.Collection("wishlists"),
	}
}

func (m *mongoWishlistRepository) GetWishlist(ctx context.Context, ownerID string) (*domain.Wishlist, error) {
	var wishlist domain.Wishlist

	filter := bson.M{"owner_id": ownerID}
	err := m.collection.FindOne(ctx, filter).Decode(&wishlist)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrWishlistNotFound
		}
		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}

	return &wishlist, nil
}

func (m *mongoWishlistRepository) AddItem(ctx context.Context, ownerID string, item domain.WishlistItem) error {
	now := time.Now()
	if item.AddedAt.IsZero() {
		item.AddedAt = now
	}

	filter := bson.M{"owner_id": ownerID}
	update := bson.M{
		"$push": bson.M{"items": item},
		"$set":  bson.M{"updated_at": now},
		"$setOnInsert": bson.M{
			"owner_id":   ownerID,
			"created_at": now,
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := m.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("failed to add wishlist item: %w", err)
	}

	return nil
}

func (m *mongoWishlistRepository) RemoveItem(ctx context.Context, ownerID, productID string) error {
	filter := bson.M{"owner_id": ownerID}
	update := bson.M{
		"$pull": bson.M{
			"items": bson.M{"product_id": productID},
		},
		"$set": bson.M{"updated_at": time.Now()},
	}

	result, err := m.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to remove wishlist item: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrWishlistNotFound
	}

	return nil
}

func (m *mongoWishlistRepository) DeleteWishlist(ctx context.Context, ownerID string) error {
	filter := bson.M{"owner_id": ownerID}

	_, err := m.collection.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete wishlist: %w", err)
	}

	return nil
}
