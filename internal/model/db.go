package model

import "time"

// CartItem is a snapshot of a product a user put in their cart.
// The store's own _id is never decoded into it.
type CartItem struct {
	ID        string  `json:"id" bson:"id" gorm:"primaryKey;size:64;not null"`
	UserID    string  `json:"userId" bson:"userId" gorm:"size:64;index;not null"`
	ProductID string  `json:"productId" bson:"productId" gorm:"size:64;not null"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Size      string  `json:"size" bson:"size" gorm:"size:16"`
	Image     string  `json:"image" bson:"image"`
}

func (CartItem) TableName() string {
	return "cart"
}

type Order struct {
	ID           string           `json:"id" bson:"id" gorm:"primaryKey;size:64;not null"`
	UserID       string           `json:"userId" bson:"userId" gorm:"size:64;index;not null"`
	Items        []map[string]any `json:"items" bson:"items" gorm:"serializer:json;type:text"`
	Total        float64          `json:"total" bson:"total"` // as submitted, never recomputed
	ShippingInfo map[string]any   `json:"shippingInfo" bson:"shippingInfo" gorm:"serializer:json;type:text"`
	PaymentInfo  map[string]any   `json:"paymentInfo" bson:"paymentInfo" gorm:"serializer:json;type:text"`
	CreatedAt    time.Time        `json:"createdAt" bson:"createdAt"`
}

func (Order) TableName() string {
	return "orders"
}
