package domain

import "time"

type Cart struct {
	ID          string     `bson:"_id,omitempty" json:"-"`
	OwnerID     string     `bson:"owner_id" json:"owner_id"`
	Items       []LineItem `bson:"items" json:"items"`
	TotalAmount int64      `bson:"total_amount" json:"total_amount"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
}

// LineItem is one product entry in a cart. Name, UnitPrice and Image are a
// snapshot taken when the product was first added; later catalog changes do
// not touch them.
type LineItem struct {
	ProductID string    `bson:"product_id" json:"product_id"`
	Name      string    `bson:"name" json:"name"`
	UnitPrice int64     `bson:"unit_price" json:"unit_price"`
	Image     string    `bson:"image" json:"image"`
	Quantity  int       `bson:"quantity" json:"quantity"`
	AddedAt   time.Time `bson:"added_at" json:"added_at"`
}

// FindItem returns the index of the item with the given product id, or -1.
func (c *Cart) FindItem(productID string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
