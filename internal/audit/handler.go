package audit

import (
	"store-admin-backend/internal/database"
	"store-admin-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AuditLogResponse struct {
	ID          uint               `json:"id"`
	CreatedAt   string             `json:"created_at"`
	StoreID     string             `json:"store_id"`
	UserID      string             `json:"user_id"`
	EntityType  string             `json:"entity_type"`
	EntityID    string             `json:"entity_id"`
	Action      models.AuditAction `json:"action"`
	Description string             `json:"description"`
}

// GET /api/:storeId/audit-logs?entity_type=product&entity_id=...
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeID := c.Params("storeId")

		dbq := database.DB.Model(&models.AuditLog{}).Where("store_id = ?", storeID)
		if entityType := c.Query("entity_type"); entityType != "" {
			dbq = dbq.Where("entity_type = ?", entityType)
		}
		if entityID := c.Query("entity_id"); entityID != "" {
			dbq = dbq.Where("entity_id = ?", entityID)
		}

		var logs []models.AuditLog
		if err := dbq.Order("created_at DESC, id DESC").Limit(500).Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Audit logs could not be listed")
		}

		resp := make([]AuditLogResponse, 0, len(logs))
		for _, l := range logs {
			resp = append(resp, AuditLogResponse{
				ID:          l.ID,
				CreatedAt:   l.CreatedAt.Format("2006-01-02 15:04:05"),
				StoreID:     l.StoreID,
				UserID:      l.UserID,
				EntityType:  l.EntityType,
				EntityID:    l.EntityID,
				Action:      l.Action,
				Description: l.Description,
			})
		}
		return c.JSON(resp)
	}
}
