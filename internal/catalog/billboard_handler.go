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
)

type BillboardRequest struct {
	Label    string `json:"label" validate:"required,max=255"`
	ImageURL string `json:"image_url" validate:"required,max=1024"`
}

func parseBillboard(c *fiber.Ctx) (BillboardRequest, error) {
	var body BillboardRequest
	if err := c.BodyParser(&body); err != nil {
		return body, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	body.Label = strings.TrimSpace(body.Label)
	body.ImageURL = strings.TrimSpace(body.ImageURL)
	return body, validation.Struct(body)
}

// POST /api/:storeId/billboards
func CreateBillboardHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := parseBillboard(c)
		if err != nil {
			return err
		}

		storeID := c.Params("storeId")
		b := models.Billboard{
			StoreID:  storeID,
			Label:    body.Label,
			ImageURL: body.ImageURL,
		}
		if err := database.DB.Create(&b).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Billboard could not be created")
		}

		audit.Record(audit.LogOptions{
			StoreID:     storeID,
			UserID:      auth.UserID(c),
			EntityType:  "billboard",
			EntityID:    b.ID,
			Action:      models.AuditActionCreate,
			Description: "billboard created: " + b.Label,
			After:       b,
		})

		return c.Status(fiber.StatusCreated).JSON(b)
	}
}

// GET /api/:storeId/billboards
func ListBillboardsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var list []models.Billboard
		if err := database.DB.
			Where("store_id = ?", c.Params("storeId")).
			Order("created_at desc").
			Find(&list).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Billboards could not be listed")
		}
		return c.JSON(list)
	}
}

// GET /api/:storeId/billboards/:billboardId
func GetBillboardHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var b models.Billboard
		if err := findInStore(&b, c.Params("storeId"), c.Params("billboardId"), "Billboard not found"); err != nil {
			return err
		}
		return c.JSON(b)
	}
}

// PATCH /api/:storeId/billboards/:billboardId
// A replaced image is removed from the object store.
func UpdateBillboardHandler(objects storage.ObjectStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeID := c.Params("storeId")

		var b models.Billboard
		if err := findInStore(&b, storeID, c.Params("billboardId"), "Billboard not found"); err != nil {
			return err
		}
		body, err := parseBillboard(c)
		if err != nil {
			return err
		}

		before := b
		b.Label = body.Label
		b.ImageURL = body.ImageURL
		if err := database.DB.Save(&b).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Billboard could not be updated")
		}

		if before.ImageURL != b.ImageURL {
			deleteObjects(c.UserContext(), objects, storeID, before.ImageURL)
		}

		audit.Record(audit.LogOptions{
			StoreID:    storeID,
			UserID:     auth.UserID(c),
			EntityType: "billboard",
			EntityID:   b.ID,
			Action:     models.AuditActionUpdate,
			Before:     before,
			After:      b,
		})

		return c.JSON(b)
	}
}

// DELETE /api/:storeId/billboards/:billboardId
func DeleteBillboardHandler(objects storage.ObjectStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeID := c.Params("storeId")

		var b models.Billboard
		if err := findInStore(&b, storeID, c.Params("billboardId"), "Billboard not found"); err != nil {
			return err
		}

		used, err := inUse(&models.Category{}, "billboard_id", b.ID)
		if err != nil {
			return err
		}
		if used {
			return fiber.NewError(fiber.StatusConflict, "Remove the categories using this billboard first")
		}

		deleteObjects(c.UserContext(), objects, storeID, b.ImageURL)

		if err := database.DB.Delete(&models.Billboard{}, "id = ?", b.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Billboard could not be deleted")
		}

		audit.Record(audit.LogOptions{
			StoreID:    storeID,
			UserID:     auth.UserID(c),
			EntityType: "billboard",
			EntityID:   b.ID,
			Action:     models.AuditActionDelete,
			Before:     b,
		})

		return c.JSON(b)
	}
}
