package catalog

import (
	"strings"

	"store-admin-backend/internal/audit"
	"store-admin-backend/internal/auth"
	"store-admin-backend/internal/database"
	"store-admin-backend/internal/models"
	"store-admin-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type SizeRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Value string `json:"value" validate:"required,max=50"`
}

func parseSize(c *fiber.Ctx) (SizeRequest, error) {
	var body SizeRequest
	if err := c.BodyParser(&body); err != nil {
		return body, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	body.Name = strings.TrimSpace(body.Name)
	body.Value = strings.TrimSpace(body.Value)
	return body, validation.Struct(body)
}

// POST /api/:storeId/sizes
func CreateSizeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := parseSize(c)
		if err != nil {
			return err
		}

		storeID := c.Params("storeId")
		s := models.Size{StoreID: storeID, Name: body.Name, Value: body.Value}
		if err := database.DB.Create(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Size could not be created")
		}

		audit.Record(audit.LogOptions{
			StoreID:    storeID,
			UserID:     auth.UserID(c),
			EntityType: "size",
			EntityID:   s.ID,
			Action:     models.AuditActionCreate,
			After:      s,
		})

		return c.Status(fiber.StatusCreated).JSON(s)
	}
}

// GET /api/:storeId/sizes
func ListSizesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var list []models.Size
		if err := database.DB.Where("store_id = ?", c.Params("storeId")).Order("created_at desc").Find(&list).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sizes could not be listed")
		}
		return c.JSON(list)
	}
}

// GET /api/:storeId/sizes/:sizeId
func GetSizeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var s models.Size
		if err := findInStore(&s, c.Params("storeId"), c.Params("sizeId"), "Size not found"); err != nil {
			return err
		}
		return c.JSON(s)
	}
}

// PATCH /api/:storeId/sizes/:sizeId
func UpdateSizeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeID := c.Params("storeId")

		var s models.Size
		if err := findInStore(&s, storeID, c.Params("sizeId"), "Size not found"); err != nil {
			return err
		}
		body, err := parseSize(c)
		if err != nil {
			return err
		}

		before := s
		s.Name = body.Name
		s.Value = body.Value
		if err := database.DB.Save(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Size could not be updated")
		}

		audit.Record(audit.LogOptions{
			StoreID:    storeID,
			UserID:     auth.UserID(c),
			EntityType: "size",
			EntityID:   s.ID,
			Action:     models.AuditActionUpdate,
			Before:     before,
			After:      s,
		})

		return c.JSON(s)
	}
}

// DELETE /api/:storeId/sizes/:sizeId
func DeleteSizeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeID := c.Params("storeId")

		var s models.Size
		if err := findInStore(&s, storeID, c.Params("sizeId"), "Size not found"); err != nil {
			return err
		}
		used, err := inUse(&models.Product{}, "size_id", s.ID)
		if err != nil {
			return err
		}
		if used {
			return fiber.NewError(fiber.StatusConflict, "Remove the products using this size first")
		}

		if err := database.DB.Delete(&models.Size{}, "id = ?", s.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Size could not be deleted")
		}

		audit.Record(audit.LogOptions{
			StoreID:    storeID,
			UserID:     auth.UserID(c),
			EntityType: "size",
			EntityID:   s.ID,
			Action:     models.AuditActionDelete,
			Before:     s,
		})

		return c.JSON(s)
	}
}
