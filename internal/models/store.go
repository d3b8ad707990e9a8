package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store: one shop owned by a single user. Everything else hangs off StoreID.
type Store struct {
	ID        string    `gorm:"size:36;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	UserID    string    `gorm:"size:100;index;not null" json:"user_id"`
	TimeZone  string    `gorm:"size:64" json:"time_zone"` // IANA, used by the "store" revenue timezone policy
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Billboards []Billboard `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Categories []Category  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Sizes      []Size      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Colors     []Color     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Products   []Product   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Orders     []Order     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (s *Store) BeforeCreate(tx *gorm.DB) error {
	s.ID = ensureID(s.ID)
	return nil
}

func ensureID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}
