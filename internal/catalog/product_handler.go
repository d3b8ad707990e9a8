package catalog

import (
	"strings"

	"store-admin-backend/internal/audit"
	"store-admin-backend/internal/auth"
	"store-admin-backend/internal/database"
	"store-admin-backend/internal/models"
	"store-admin-backend/internal/storage"
	"store-admin-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ImageInput struct {
	URL string `json:"url" validate:"required,max=1024"`
}

type ProductRequest struct {
	Name       string          `json:"name" validate:"required,max=255"`
	Price      decimal.Decimal `json:"price" validate:"gt=0"`
	CategoryID string          `json:"category_id" validate:"required"`
	SizeID     string          `json:"size_id" validate:"required"`
	ColorID    string          `json:"color_id" validate:"required"`
	Images     []ImageInput    `json:"images" validate:"required,min=1,dive"`
	IsFeatured bool            `json:"is_featured"`
	IsArchived bool            `json:"is_archived"`
}

func parseProduct(c *fiber.Ctx, storeID string) (ProductRequest, error) {
	var body ProductRequest
	if err := c.BodyParser(&body); err != nil {
		return body, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	body.Name = strings.TrimSpace(body.Name)
	if err := validation.Struct(body); err != nil {
		return body, err
	}

	// referenced rows must belong to the same store
	refs := []struct {
		model interface{}
		id    string
		msg   string
	}{
		{&models.Category{}, body.CategoryID, "Choose a category of this store"},
		{&models.Size{}, body.SizeID, "Choose a size of this store"},
		{&models.Color{}, body.ColorID, "Choose a color of this store"},
	}
	for _, ref := range refs {
		var n int64
		if err := database.DB.Model(ref.model).Where("id = ? AND store_id = ?", ref.id, storeID).Count(&n).Error; err != nil {
			return body, err
		}
		if n == 0 {
			return body, fiber.NewError(fiber.StatusBadRequest, ref.msg)
		}
	}
	return body, nil
}

func imagesFrom(in []ImageInput) []models.Image {
	out := make([]models.Image, 0, len(in))
	for _, img := range in {
		out = append(out, models.Image{URL: strings.TrimSpace(img.URL)})
	}
	return out
}

func loadProduct(storeID, productID string) (*models.Product, error) {
	var p models.Product
	err := database.DB.
		Preload("Images").
		Preload("Category").
		Preload("Size").
		Preload("Color").
		Where("id = ? AND store_id = ?", productID, storeID).
		First(&p).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Product not found")
	}
	return &p, nil
}

// POST /api/:storeId/products
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeID := c.Params("storeId")
		body, err := parseProduct(c, storeID)
		if err != nil {
			return err
		}

		p := models.Product{
			StoreID:    storeID,
			CategoryID: body.CategoryID,
			SizeID:     body.SizeID,
			ColorID:    body.ColorID,
			Name:       body.Name,
			Price:      body.Price,
			IsFeatured: body.IsFeatured,
			IsArchived: body.IsArchived,
			Images:     imagesFrom(body.Images),
		}
		if err := database.DB.Omit("Category", "Size", "Color").Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Product could not be created")
		}

		audit.Record(audit.LogOptions{
			StoreID:     storeID,
			UserID:      auth.UserID(c),
			EntityType:  "product",
			EntityID:    p.ID,
			Action:      models.AuditActionCreate,
			Description: "product created: " + p.Name,
			After:       p,
		})

		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// GET /api/:storeId/products?category_id=&color_id=&size_id=&is_featured=true
// Archived products are never listed.
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Product{}).
			Where("store_id = ? AND is_archived = ?", c.Params("storeId"), false)

		for param, column := range map[string]string{
			"category_id": "category_id",
			"color_id":    "color_id",
			"size_id":     "size_id",
		} {
			if v := c.Query(param); v != "" {
				dbq = dbq.Where(column+" = ?", v)
			}
		}
		if c.Query("is_featured") == "true" {
			dbq = dbq.Where("is_featured = ?", true)
		}

		var list []models.Product
		if err := dbq.
			Preload("Images").
			Preload("Category").
			Preload("Size").
			Preload("Color").
			Order("created_at desc").
			Find(&list).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Products could not be listed")
		}
		return c.JSON(list)
	}
}

// GET /api/:storeId/products/:productId
func GetProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := loadProduct(c.Params("storeId"), c.Params("productId"))
		if err != nil {
			return err
		}
		return c.JSON(p)
	}
}

// PATCH /api/:storeId/products/:productId
// The image set is replaced; images no longer referenced are removed from
// the object store after the update commits.
func UpdateProductHandler(objects storage.ObjectStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeID := c.Params("storeId")

		before, err := loadProduct(storeID, c.Params("productId"))
		if err != nil {
			return err
		}
		body, err := parseProduct(c, storeID)
		if err != nil {
			return err
		}

		newImages := imagesFrom(body.Images)
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Product{}).Where("id = ?", before.ID).Updates(map[string]interface{}{
				"name":        body.Name,
				"price":       body.Price,
				"category_id": body.CategoryID,
				"size_id":     body.SizeID,
				"color_id":    body.ColorID,
				"is_featured": body.IsFeatured,
				"is_archived": body.IsArchived,
			}).Error; err != nil {
				return err
			}
			if err := tx.Where("product_id = ?", before.ID).Delete(&models.Image{}).Error; err != nil {
				return err
			}
			for i := range newImages {
				newImages[i].ProductID = before.ID
			}
			return tx.Omit(clause.Associations).Create(&newImages).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Product could not be updated")
		}

		kept := make(map[string]bool, len(newImages))
		for _, img := range newImages {
			kept[img.URL] = true
		}
		var removed []string
		for _, img := range before.Images {
			if !kept[img.URL] {
				removed = append(removed, img.URL)
			}
		}
		deleteObjects(c.UserContext(), objects, storeID, removed...)

		after, err := loadProduct(storeID, before.ID)
		if err != nil {
			return err
		}

		audit.Record(audit.LogOptions{
			StoreID:    storeID,
			UserID:     auth.UserID(c),
			EntityType: "product",
			EntityID:   after.ID,
			Action:     models.AuditActionUpdate,
			Before:     before,
			After:      after,
		})

		return c.JSON(after)
	}
}

// DELETE /api/:storeId/products/:productId
func DeleteProductHandler(objects storage.ObjectStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeID := c.Params("storeId")

		p, err := loadProduct(storeID, c.Params("productId"))
		if err != nil {
			return err
		}

		urls := make([]string, 0, len(p.Images))
		for _, img := range p.Images {
			urls = append(urls, img.URL)
		}
		deleteObjects(c.UserContext(), objects, storeID, urls...)

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("product_id = ?", p.ID).Delete(&models.Image{}).Error; err != nil {
				return err
			}
			return tx.Delete(&models.Product{}, "id = ?", p.ID).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Product could not be deleted")
		}

		audit.Record(audit.LogOptions{
			StoreID:    storeID,
			UserID:     auth.UserID(c),
			EntityType: "product",
			EntityID:   p.ID,
			Action:     models.AuditActionDelete,
			Before:     p,
		})

		return c.JSON(p)
	}
}
