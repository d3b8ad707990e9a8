package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order: a storefront purchase. IsPaid flips false -> true once, on payment.
type Order struct {
	ID        string    `gorm:"size:36;primaryKey" json:"id"`
	StoreID   string    `gorm:"size:36;index;not null" json:"store_id"`
	IsPaid    bool      `gorm:"not null;default:false;index" json:"is_paid"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Address   string    `gorm:"size:255" json:"address"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	o.ID = ensureID(o.ID)
	return nil
}

// Total sums the line item prices.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.UnitPrice)
	}
	return total
}

// OrderItem: UnitPrice is the product price at order time, never a live
// reference to Product.Price.
type OrderItem struct {
	ID        string          `gorm:"size:36;primaryKey" json:"id"`
	OrderID   string          `gorm:"size:36;index;not null" json:"order_id"`
	ProductID string          `gorm:"size:36;index;not null" json:"product_id"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	CreatedAt time.Time       `json:"created_at"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	i.ID = ensureID(i.ID)
	return nil
}
