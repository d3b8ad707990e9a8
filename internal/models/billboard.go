package models

import (
	"time"

	"gorm.io/gorm"
)

type Billboard struct {
	ID        string    `gorm:"size:36;primaryKey" json:"id"`
	StoreID   string    `gorm:"size:36;index;not null" json:"store_id"`
	Label     string    `gorm:"size:255;not null" json:"label"`
	ImageURL  string    `gorm:"size:1024;not null" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Billboard) BeforeCreate(tx *gorm.DB) error {
	b.ID = ensureID(b.ID)
	return nil
}
