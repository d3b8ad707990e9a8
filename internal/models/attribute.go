package models

import (
	"time"

	"gorm.io/gorm"
)

// Size: e.g. Name "Large", Value "L"
type Size struct {
	ID        string    `gorm:"size:36;primaryKey" json:"id"`
	StoreID   string    `gorm:"size:36;index;not null" json:"store_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Value     string    `gorm:"size:50;not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Size) BeforeCreate(tx *gorm.DB) error {
	s.ID = ensureID(s.ID)
	return nil
}

// Color: Value is a hex code (#rrggbb)
type Color struct {
	ID        string    `gorm:"size:36;primaryKey" json:"id"`
	StoreID   string    `gorm:"size:36;index;not null" json:"store_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Value     string    `gorm:"size:20;not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Color) BeforeCreate(tx *gorm.DB) error {
	c.ID = ensureID(c.ID)
	return nil
}
