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

type ColorRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Value string `json:"value" validate:"required,hexcolor"`
}

func parseColor(c *fiber.Ctx) (ColorRequest, error) {
	var body ColorRequest
	if err := c.BodyParser(&body); err != nil {
		return body, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	body.Name = strings.TrimSpace(body.Name)
	body.Value = strings.TrimSpace(body.Value)
	return body, validation.Struct(body)
}

// POST /api/:storeId/colors
func CreateColorHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := parseColor(c)
		if err != nil {
			return err
		}

		storeID := c.Params("storeId")
		col := models.Color{StoreID: storeID, Name: body.Name, Value: body.Value}
		if err := database.DB.Create(&col).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Color could not be created")
		}

		audit.Record(audit.LogOptions{
			StoreID:    storeID,
			UserID:     auth.UserID(c),
			EntityType: "color",
			EntityID:   col.ID,
			Action:     models.AuditActionCreate,
			After:      col,
		})

		return c.Status(fiber.StatusCreated).JSON(col)
	}
}

// GET /api/:storeId/colors
func ListColorsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var list []models.Color
		if err := database.DB.Where("store_id = ?", c.Params("storeId")).Order("created_at desc").Find(&list).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Colors could not be listed")
		}
		return c.JSON(list)
	}
}

// GET /api/:storeId/colors/:colorId
func GetColorHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var col models.Color
		if err := findInStore(&col, c.Params("storeId"), c.Params("colorId"), "Color not found"); err != nil {
			return err
		}
		return c.JSON(col)
	}
}

// PATCH /api/:storeId/colors/:colorId
func UpdateColorHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeID := c.Params("storeId")

		var col models.Color
		if err := findInStore(&col, storeID, c.Params("colorId"), "Color not found"); err != nil {
			return err
		}
		body, err := parseColor(c)
		if err != nil {
			return err
		}

		before := col
		col.Name = body.Name
		col.Value = body.Value
		if err := database.DB.Save(&col).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Color could not be updated")
		}

		audit.Record(audit.LogOptions{
			StoreID:    storeID,
			UserID:     auth.UserID(c),
			EntityType: "color",
			EntityID:   col.ID,
			Action:     models.AuditActionUpdate,
			Before:     before,
			After:      col,
		})

		return c.JSON(col)
	}
}

// DELETE /api/:storeId/colors/:colorId
func DeleteColorHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeID := c.Params("storeId")

		var col models.Color
		if err := findInStore(&col, storeID, c.Params("colorId"), "Color not found"); err != nil {
			return err
		}
		used, err := inUse(&models.Product{}, "color_id", col.ID)
		if err != nil {
			return err
		}
		if used {
			return fiber.NewError(fiber.StatusConflict, "Remove the products using this color first")
		}

		if err := database.DB.Delete(&models.Color{}, "id = ?", col.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Color could not be deleted")
		}

		audit.Record(audit.LogOptions{
			StoreID:    storeID,
			UserID:     auth.UserID(c),
			EntityType: "color",
			EntityID:   col.ID,
			Action:     models.AuditActionDelete,
			Before:     col,
		})

		return c.JSON(col)
	}
}
