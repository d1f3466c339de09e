package domain

import "time"

// Product is the live catalog view of an item: current price and stock as the
// catalog knows them right now. Carts and wishlists never store a Product,
// only a snapshot of its fields at add time.
type Product struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Price     int64     `bson:"price" json:"price"`
	Stock     int       `bson:"stock" json:"stock"`
	Image     string    `bson:"image" json:"image"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
