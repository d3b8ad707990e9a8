package stores

import (
	"context"
	"strings"
	"time"

	"store-admin-backend/internal/audit"
	"store-admin-backend/internal/auth"
	"store-admin-backend/internal/database"
	"store-admin-backend/internal/logger"
	"store-admin-backend/internal/models"
	"store-admin-backend/internal/storage"
	"store-admin-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateStoreRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	TimeZone string `json:"time_zone" validate:"omitempty,max=64"`
}

type UpdateStoreRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	TimeZone *string `json:"time_zone" validate:"omitempty,max=64"`
}

func checkTimeZone(tz string) error {
	if tz == "" {
		return nil
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "time_zone must be an IANA zone like Europe/Istanbul")
	}
	return nil
}

// POST /api/stores
func CreateStoreHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateStoreRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		body.Name = strings.TrimSpace(body.Name)
		body.TimeZone = strings.TrimSpace(body.TimeZone)
		if err := validation.Struct(body); err != nil {
			return err
		}
		if err := checkTimeZone(body.TimeZone); err != nil {
			return err
		}

		userID := auth.UserID(c)
		store := models.Store{
			Name:     body.Name,
			UserID:   userID,
			TimeZone: body.TimeZone,
		}
		if err := database.DB.Create(&store).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Store could not be created")
		}

		audit.Record(audit.LogOptions{
			StoreID:     store.ID,
			UserID:      userID,
			EntityType:  "store",
			EntityID:    store.ID,
			Action:      models.AuditActionCreate,
			Description: "store created: " + store.Name,
			After:       store,
		})

		return c.Status(fiber.StatusCreated).JSON(store)
	}
}

// GET /api/stores (caller's stores only)
func ListStoresHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var list []models.Store
		if err := database.DB.
			Where("user_id = ?", auth.UserID(c)).
			Order("created_at asc").
			Find(&list).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stores could not be listed")
		}
		return c.JSON(list)
	}
}

// GET /api/stores/:storeId
func GetStoreHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(auth.CurrentStore(c))
	}
}

// PATCH /api/stores/:storeId
func UpdateStoreHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		store := auth.CurrentStore(c)
		before := *store

		var body UpdateStoreRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			body.Name = &name
		}
		if err := validation.Struct(body); err != nil {
			return err
		}

		if body.Name != nil {
			if *body.Name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "name is required")
			}
			store.Name = *body.Name
		}
		if body.TimeZone != nil {
			tz := strings.TrimSpace(*body.TimeZone)
			if err := checkTimeZone(tz); err != nil {
				return err
			}
			store.TimeZone = tz
		}

		if err := database.DB.Save(store).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Store could not be updated")
		}

		audit.Record(audit.LogOptions{
			StoreID:    store.ID,
			UserID:     auth.UserID(c),
			EntityType: "store",
			EntityID:   store.ID,
			Action:     models.AuditActionUpdate,
			Before:     before,
			After:      store,
		})

		return c.JSON(store)
	}
}

// DELETE /api/stores/:storeId
// Removes the store with everything under it. Image objects are deleted
// best effort after the rows are gone.
func DeleteStoreHandler(objects storage.ObjectStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		store := auth.CurrentStore(c)

		var urls []string
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			var billboardURLs, imageURLs []string
			if err := tx.Model(&models.Billboard{}).Where("store_id = ?", store.ID).Pluck("image_url", &billboardURLs).Error; err != nil {
				return err
			}
			productIDs := tx.Model(&models.Product{}).Select("id").Where("store_id = ?", store.ID)
			if err := tx.Model(&models.Image{}).Where("product_id IN (?)", productIDs).Pluck("url", &imageURLs).Error; err != nil {
				return err
			}
			urls = append(billboardURLs, imageURLs...)

			orderIDs := tx.Model(&models.Order{}).Select("id").Where("store_id = ?", store.ID)
			steps := []func() error{
				func() error { return tx.Where("order_id IN (?)", orderIDs).Delete(&models.OrderItem{}).Error },
				func() error { return tx.Where("store_id = ?", store.ID).Delete(&models.Order{}).Error },
				func() error { return tx.Where("product_id IN (?)", productIDs).Delete(&models.Image{}).Error },
				func() error { return tx.Where("store_id = ?", store.ID).Delete(&models.Product{}).Error },
				func() error { return tx.Where("store_id = ?", store.ID).Delete(&models.Category{}).Error },
				func() error { return tx.Where("store_id = ?", store.ID).Delete(&models.Billboard{}).Error },
				func() error { return tx.Where("store_id = ?", store.ID).Delete(&models.Size{}).Error },
				func() error { return tx.Where("store_id = ?", store.ID).Delete(&models.Color{}).Error },
				func() error { return tx.Delete(&models.Store{}, "id = ?", store.ID).Error },
			}
			for _, step := range steps {
				if err := step(); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			logger.WithStore(store.ID).WithError(err).Error("store delete failed")
			return fiber.NewError(fiber.StatusInternalServerError, "Store could not be deleted")
		}

		removeObjects(c.UserContext(), objects, store.ID, urls)

		audit.Record(audit.LogOptions{
			StoreID:    store.ID,
			UserID:     auth.UserID(c),
			EntityType: "store",
			EntityID:   store.ID,
			Action:     models.AuditActionDelete,
			Before:     store,
		})

		return c.JSON(store)
	}
}

func removeObjects(ctx context.Context, objects storage.ObjectStore, storeID string, urls []string) {
	for _, u := range urls {
		if err := objects.Delete(ctx, u); err != nil {
			logger.WithStore(storeID).WithError(err).WithField("url", u).Warn("image not deleted from storage")
		}
	}
}
