package testutil

import (
	"testing"

	"store-admin-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Catalog is a store with one row of every catalog entity.
type Catalog struct {
	Store     models.Store
	Billboard models.Billboard
	Category  models.Category
	Size      models.Size
	Color     models.Color
	Product   models.Product
}

func SeedStore(t *testing.T, db *gorm.DB, name, userID string) models.Store {
	t.Helper()
	store := models.Store{Name: name, UserID: userID}
	require.NoError(t, db.Create(&store).Error)
	return store
}

// SeedCatalog creates a store owned by userID with a product priced 9.99.
func SeedCatalog(t *testing.T, db *gorm.DB, userID string) Catalog {
	t.Helper()
	var c Catalog
	c.Store = SeedStore(t, db, "Shop", userID)

	c.Billboard = models.Billboard{StoreID: c.Store.ID, Label: "Main", ImageURL: "https://cdn.test/object/public/images/main.png"}
	require.NoError(t, db.Create(&c.Billboard).Error)

	c.Category = models.Category{StoreID: c.Store.ID, BillboardID: c.Billboard.ID, Name: "Shirts"}
	require.NoError(t, db.Omit("Billboard").Create(&c.Category).Error)

	c.Size = models.Size{StoreID: c.Store.ID, Name: "Medium", Value: "M"}
	require.NoError(t, db.Create(&c.Size).Error)

	c.Color = models.Color{StoreID: c.Store.ID, Name: "Red", Value: "#ff0000"}
	require.NoError(t, db.Create(&c.Color).Error)

	c.Product = models.Product{
		StoreID:    c.Store.ID,
		CategoryID: c.Category.ID,
		SizeID:     c.Size.ID,
		ColorID:    c.Color.ID,
		Name:       "Tee",
		Price:      decimal.RequireFromString("9.99"),
		Images:     []models.Image{{URL: "https://cdn.test/object/public/images/tee.png"}},
	}
	require.NoError(t, db.Omit("Category", "Size", "Color").Create(&c.Product).Error)
	return c
}
