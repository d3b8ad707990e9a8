package audit

import (
	"encoding/json"
	"fmt"

	"store-admin-backend/internal/database"
	"store-admin-backend/internal/logger"
	"store-admin-backend/internal/models"
)

type LogOptions struct {
	StoreID     string
	UserID      string
	EntityType  string
	EntityID    string
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

func WriteLog(opts LogOptions) error {
	// jsonb columns need the JSON literal null, not an empty string
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	entry := models.AuditLog{
		StoreID:     opts.StoreID,
		UserID:      opts.UserID,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

// Record writes a log entry and only logs a failure; auditing never fails
// the request that triggered it.
func Record(opts LogOptions) {
	if err := WriteLog(opts); err != nil {
		logger.WithStore(opts.StoreID).WithError(err).
			WithField("entity_type", opts.EntityType).
			Error("audit log not written")
	}
}
