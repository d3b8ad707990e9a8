package auth

import (
	"errors"
	"strings"

	"store-admin-backend/internal/config"
	"store-admin-backend/internal/database"
	"store-admin-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	CtxUserIDKey = "user_id"
	CtxStoreKey  = "store"
)

func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthenticated")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization header must be 'Bearer <token>'")
		}

		claims, err := ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		c.Locals(CtxUserIDKey, claims.Subject)
		return c.Next()
	}
}

// UserID returns the caller id set by JWTMiddleware, or "".
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(CtxUserIDKey).(string)
	return id
}

// RequireStoreOwner loads the :storeId store and lets the request through
// only when the caller owns it. The store is left in c.Locals(CtxStoreKey).
func RequireStoreOwner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := UserID(c)
		if userID == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthenticated")
		}

		storeID := c.Params("storeId")
		if storeID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Store Id is required")
		}

		var store models.Store
		if err := database.DB.First(&store, "id = ?", storeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Store not found")
			}
			return err
		}
		if store.UserID != userID {
			return fiber.NewError(fiber.StatusForbidden, "Unauthorized Access")
		}

		c.Locals(CtxStoreKey, &store)
		return c.Next()
	}
}

// CurrentStore returns the store loaded by RequireStoreOwner.
func CurrentStore(c *fiber.Ctx) *models.Store {
	s, _ := c.Locals(CtxStoreKey).(*models.Store)
	return s
}
