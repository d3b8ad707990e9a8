package models

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID          string    `gorm:"size:36;primaryKey" json:"id"`
	StoreID     string    `gorm:"size:36;index;not null" json:"store_id"`
	BillboardID string    `gorm:"size:36;index;not null" json:"billboard_id"`
	Billboard   Billboard `gorm:"constraint:OnDelete:RESTRICT" json:"billboard,omitempty"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	c.ID = ensureID(c.ID)
	return nil
}
