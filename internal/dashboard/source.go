package dashboard

import (
	"context"
	"errors"
	"fmt"

	"store-admin-backend/internal/models"

	"gorm.io/gorm"
)

// ErrDataAccess marks a failure of the underlying store. It is returned
// wrapped around the cause and never retried here.
var ErrDataAccess = errors.New("data access fault")

// FactSource supplies the read-only facts the dashboard aggregates. Callers
// must have authorized access to storeID already.
type FactSource interface {
	// FetchPaidOrders returns the store's paid orders with their line items.
	FetchPaidOrders(ctx context.Context, storeID string) ([]models.Order, error)
	CountPaidOrders(ctx context.Context, storeID string) (int64, error)
	// CountInStockProducts counts the store's products that are not archived.
	CountInStockProducts(ctx context.Context, storeID string) (int64, error)
}

// StoreLocator resolves a store's IANA time zone name ("" when unset).
type StoreLocator interface {
	StoreTimeZone(ctx context.Context, storeID string) (string, error)
}

type GormFactSource struct {
	db *gorm.DB
}

func NewGormFactSource(db *gorm.DB) *GormFactSource {
	return &GormFactSource{db: db}
}

func (s *GormFactSource) paidOrders(ctx context.Context, storeID string) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("store_id = ? AND is_paid = ?", storeID, true)
}

func (s *GormFactSource) FetchPaidOrders(ctx context.Context, storeID string) ([]models.Order, error) {
	var orders []models.Order
	if err := s.paidOrders(ctx, storeID).Preload("Items").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("%w: fetch paid orders: %w", ErrDataAccess, err)
	}
	return orders, nil
}

func (s *GormFactSource) CountPaidOrders(ctx context.Context, storeID string) (int64, error) {
	var n int64
	if err := s.paidOrders(ctx, storeID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("%w: count paid orders: %w", ErrDataAccess, err)
	}
	return n, nil
}

func (s *GormFactSource) CountInStockProducts(ctx context.Context, storeID string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("store_id = ? AND is_archived = ?", storeID, false).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("%w: count in-stock products: %w", ErrDataAccess, err)
	}
	return n, nil
}

func (s *GormFactSource) StoreTimeZone(ctx context.Context, storeID string) (string, error) {
	var store models.Store
	err := s.db.WithContext(ctx).Select("id", "time_zone").First(&store, "id = ?", storeID).Error
	if err != nil {
		return "", fmt.Errorf("%w: load store time zone: %w", ErrDataAccess, err)
	}
	return store.TimeZone, nil
}
