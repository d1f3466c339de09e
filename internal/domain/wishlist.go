package domain

import "time"

type Wishlist struct {
	ID        string         `bson:"_id,omitempty" json:"-"`
	OwnerID   string         `bson:"owner_id" json:"owner_id"`
	Items     []WishlistItem `bson:"items" json:"items"`
	CreatedAt time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updated_at"`
}

// WishlistItem has no quantity; a product is either on the list or not.
type WishlistItem struct {
	ProductID string    `bson:"product_id" json:"product_id"`
	Name      string    `bson:"name" json:"name"`
	UnitPrice int64     `bson:"unit_price" json:"unit_price"`
	Image     string    `bson:"image" json:"image"`
	AddedAt   time.Time `bson:"added_at" json:"added_at"`
}

func (w *Wishlist) Contains(productID string) bool {
	for i := range w.Items {
		if w.Items[i].ProductID == productID {
			return true
		}
	}
	return false
}
