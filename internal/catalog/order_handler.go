package catalog

import (
	"encoding/json"
	"strings"

	"store-admin-backend/internal/audit"
	"store-admin-backend/internal/auth"
	"store-admin-backend/internal/database"
	"store-admin-backend/internal/models"
	"store-admin-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type CreateOrderRequest struct {
	ProductIDs []string `json:"product_ids" validate:"required,min=1,dive,required"`
	Phone      string   `json:"phone" validate:"max=50"`
	Address    string   `json:"address" validate:"max=255"`
	IsPaid     bool     `json:"is_paid"`
}

type OrderResponse struct {
	ID        string      `json:"id"`
	Phone     string      `json:"phone"`
	Address   string      `json:"address"`
	IsPaid    bool        `json:"is_paid"`
	ItemCount int         `json:"item_count"`
	Total     json.Number `json:"total"`
	CreatedAt string      `json:"created_at"`
}

func toOrderResponse(o models.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		Phone:     o.Phone,
		Address:   o.Address,
		IsPaid:    o.IsPaid,
		ItemCount: len(o.Items),
		Total:     json.Number(o.Total().String()),
		CreatedAt: o.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// GET /api/:storeId/orders
func ListOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var orders []models.Order
		if err := database.DB.
			Preload("Items").
			Where("store_id = ?", c.Params("storeId")).
			Order("created_at desc").
			Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Orders could not be listed")
		}

		resp := make([]OrderResponse, 0, len(orders))
		for _, o := range orders {
			resp = append(resp, toOrderResponse(o))
		}
		return c.JSON(resp)
	}
}

// POST /api/:storeId/orders
// Each line item snapshots the product's current price.
func CreateOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeID := c.Params("storeId")

		var body CreateOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validation.Struct(body); err != nil {
			return err
		}

		var products []models.Product
		if err := database.DB.
			Where("store_id = ? AND is_archived = ? AND id IN ?", storeID, false, body.ProductIDs).
			Find(&products).Error; err != nil {
			return err
		}
		byID := make(map[string]models.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		order := models.Order{
			StoreID: storeID,
			IsPaid:  body.IsPaid,
			Phone:   strings.TrimSpace(body.Phone),
			Address: strings.TrimSpace(body.Address),
		}
		for _, id := range body.ProductIDs {
			p, ok := byID[id]
			if !ok {
				return fiber.NewError(fiber.StatusBadRequest, "Unknown or archived product: "+id)
			}
			order.Items = append(order.Items, models.OrderItem{ProductID: p.ID, UnitPrice: p.Price})
		}

		if err := database.DB.Create(&order).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Order could not be created")
		}

		audit.Record(audit.LogOptions{
			StoreID:    storeID,
			UserID:     auth.UserID(c),
			EntityType: "order",
			EntityID:   order.ID,
			Action:     models.AuditActionCreate,
			After:      toOrderResponse(order),
		})

		return c.Status(fiber.StatusCreated).JSON(toOrderResponse(order))
	}
}

// PATCH /api/:storeId/orders/:orderId/paid
// Payment is recorded once; a paid order never goes back to unpaid.
func MarkOrderPaidHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeID := c.Params("storeId")

		var order models.Order
		if err := findInStore(&order, storeID, c.Params("orderId"), "Order not found"); err != nil {
			return err
		}

		res := database.DB.Model(&models.Order{}).
			Where("id = ? AND is_paid = ?", order.ID, false).
			Update("is_paid", true)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Order could not be updated")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusConflict, "Order is already paid")
		}

		if err := database.DB.Preload("Items").First(&order, "id = ?", order.ID).Error; err != nil {
			return err
		}

		audit.Record(audit.LogOptions{
			StoreID:     storeID,
			UserID:      auth.UserID(c),
			EntityType:  "order",
			EntityID:    order.ID,
			Action:      models.AuditActionUpdate,
			Description: "order marked paid",
			After:       toOrderResponse(order),
		})

		return c.JSON(toOrderResponse(order))
	}
}
