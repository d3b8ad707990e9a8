package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID         string          `gorm:"size:36;primaryKey" json:"id"`
	StoreID    string          `gorm:"size:36;index;not null" json:"store_id"`
	CategoryID string          `gorm:"size:36;index;not null" json:"category_id"`
	Category   Category        `gorm:"constraint:OnDelete:RESTRICT" json:"category,omitempty"`
	SizeID     string          `gorm:"size:36;index;not null" json:"size_id"`
	Size       Size            `gorm:"constraint:OnDelete:RESTRICT" json:"size,omitempty"`
	ColorID    string          `gorm:"size:36;index;not null" json:"color_id"`
	Color      Color           `gorm:"constraint:OnDelete:RESTRICT" json:"color,omitempty"`
	Name       string          `gorm:"size:255;not null" json:"name"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	IsFeatured bool            `gorm:"not null;default:false" json:"is_featured"`
	IsArchived bool            `gorm:"not null;default:false;index" json:"is_archived"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	Images []Image `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	p.ID = ensureID(p.ID)
	return nil
}

// Image: public URL of an object in the object store
type Image struct {
	ID        string    `gorm:"size:36;primaryKey" json:"id"`
	ProductID string    `gorm:"size:36;index;not null" json:"product_id"`
	URL       string    `gorm:"size:1024;not null" json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

func (i *Image) BeforeCreate(tx *gorm.DB) error {
	i.ID = ensureID(i.ID)
	return nil
}
