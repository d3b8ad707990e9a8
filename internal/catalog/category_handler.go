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

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	BillboardID string `json:"billboard_id" validate:"required"`
}

func parseCategory(c *fiber.Ctx, storeID string) (CategoryRequest, error) {
	var body CategoryRequest
	if err := c.BodyParser(&body); err != nil {
		return body, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	body.Name = strings.TrimSpace(body.Name)
	if err := validation.Struct(body); err != nil {
		return body, err
	}

	var b models.Billboard
	if err := findInStore(&b, storeID, body.BillboardID, ""); err != nil {
		return body, fiber.NewError(fiber.StatusBadRequest, "Choose a billboard of this store")
	}
	return body, nil
}

// POST /api/:storeId/categories
func CreateCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeID := c.Params("storeId")
		body, err := parseCategory(c, storeID)
		if err != nil {
			return err
		}

		cat := models.Category{
			StoreID:     storeID,
			BillboardID: body.BillboardID,
			Name:        body.Name,
		}
		if err := database.DB.Omit("Billboard").Create(&cat).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Category could not be created")
		}

		audit.Record(audit.LogOptions{
			StoreID:     storeID,
			UserID:      auth.UserID(c),
			EntityType:  "category",
			EntityID:    cat.ID,
			Action:      models.AuditActionCreate,
			Description: "category created: " + cat.Name,
			After:       cat,
		})

		return c.Status(fiber.StatusCreated).JSON(cat)
	}
}

// GET /api/:storeId/categories
func ListCategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var list []models.Category
		if err := database.DB.
			Preload("Billboard").
			Where("store_id = ?", c.Params("storeId")).
			Order("created_at desc").
			Find(&list).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Categories could not be listed")
		}
		return c.JSON(list)
	}
}

// GET /api/:storeId/categories/:categoryId
func GetCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var cat models.Category
		err := database.DB.Preload("Billboard").
			Where("id = ? AND store_id = ?", c.Params("categoryId"), c.Params("storeId")).
			First(&cat).Error
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Category not found")
		}
		return c.JSON(cat)
	}
}

// PATCH /api/:storeId/categories/:categoryId
func UpdateCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeID := c.Params("storeId")

		var cat models.Category
		if err := findInStore(&cat, storeID, c.Params("categoryId"), "Category not found"); err != nil {
			return err
		}
		body, err := parseCategory(c, storeID)
		if err != nil {
			return err
		}

		before := cat
		err = database.DB.Model(&models.Category{}).Where("id = ?", cat.ID).Updates(map[string]interface{}{
			"name":         body.Name,
			"billboard_id": body.BillboardID,
		}).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Category could not be updated")
		}
		cat.Name = body.Name
		cat.BillboardID = body.BillboardID

		audit.Record(audit.LogOptions{
			StoreID:    storeID,
			UserID:     auth.UserID(c),
			EntityType: "category",
			EntityID:   cat.ID,
			Action:     models.AuditActionUpdate,
			Before:     before,
			After:      cat,
		})

		return c.JSON(cat)
	}
}

// DELETE /api/:storeId/categories/:categoryId
func DeleteCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeID := c.Params("storeId")

		var cat models.Category
		if err := findInStore(&cat, storeID, c.Params("categoryId"), "Category not found"); err != nil {
			return err
		}

		used, err := inUse(&models.Product{}, "category_id", cat.ID)
		if err != nil {
			return err
		}
		if used {
			return fiber.NewError(fiber.StatusConflict, "Remove the products in this category first")
		}

		if err := database.DB.Delete(&models.Category{}, "id = ?", cat.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Category could not be deleted")
		}

		audit.Record(audit.LogOptions{
			StoreID:    storeID,
			UserID:     auth.UserID(c),
			EntityType: "category",
			EntityID:   cat.ID,
			Action:     models.AuditActionDelete,
			Before:     cat,
		})

		return c.JSON(cat)
	}
}
