package models

import (
	"time"

	"gorm.io/gorm"
)

// User: accounts of the built-in identity provider. Stores only reference
// the id, so externally issued identities work without a row here.
type User struct {
	ID           string `gorm:"size:36;primaryKey"`
	Name         string `gorm:"size:100;not null"`
	Email        string `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	u.ID = ensureID(u.ID)
	return nil
}
