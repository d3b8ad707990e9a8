package catalog

import (
	"context"
	"errors"

	"store-admin-backend/internal/database"
	"store-admin-backend/internal/logger"
	"store-admin-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// findInStore loads the row with the given id belonging to storeID into
// dest, mapping a miss to 404.
func findInStore(dest interface{}, storeID, id, notFound string) error {
	err := database.DB.Where("id = ? AND store_id = ?", id, storeID).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, notFound)
	}
	return err
}

// inUse reports whether any row of model in column references id.
func inUse(model interface{}, column, id string) (bool, error) {
	var n int64
	if err := database.DB.Model(model).Where(column+" = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// deleteObjects removes images from the object store. Failures are logged
// and never block the database change that made the image unused.
func deleteObjects(ctx context.Context, objects storage.ObjectStore, storeID string, urls ...string) {
	for _, u := range urls {
		if u == "" {
			continue
		}
		if err := objects.Delete(ctx, u); err != nil {
			logger.WithStore(storeID).WithError(err).WithField("url", u).Warn("image not deleted from storage")
		}
	}
}
