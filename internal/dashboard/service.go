package dashboard

import (
	"context"
	"time"

	"store-admin-backend/internal/logger"

	"github.com/shopspring/decimal"
)

// Service computes the store dashboard. Each call fetches its own facts and
// builds a fresh report; nothing is cached or shared between calls.
type Service struct {
	source FactSource
	policy TimezonePolicy
}

func NewService(source FactSource, policy TimezonePolicy) *Service {
	if policy == "" {
		policy = PolicyLocal
	}
	return &Service{source: source, policy: policy}
}

// Overview is everything the dashboard page shows at once.
type Overview struct {
	TotalRevenue decimal.Decimal
	SalesCount   int64
	StockCount   int64
	Graph        Report
}

func (s *Service) GraphRevenue(ctx context.Context, storeID string) (Report, error) {
	orders, err := s.source.FetchPaidOrders(ctx, storeID)
	if err != nil {
		return Report{}, err
	}
	b, err := s.bucketer(ctx, storeID)
	if err != nil {
		return Report{}, err
	}
	return Aggregate(orders, b), nil
}

// TotalRevenue sums every paid order of the store. It always equals the sum
// of the GraphRevenue buckets.
func (s *Service) TotalRevenue(ctx context.Context, storeID string) (decimal.Decimal, error) {
	orders, err := s.source.FetchPaidOrders(ctx, storeID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.Total())
	}
	return total, nil
}

func (s *Service) SalesCount(ctx context.Context, storeID string) (int64, error) {
	return s.source.CountPaidOrders(ctx, storeID)
}

func (s *Service) StockCount(ctx context.Context, storeID string) (int64, error) {
	return s.source.CountInStockProducts(ctx, storeID)
}

func (s *Service) Overview(ctx context.Context, storeID string) (Overview, error) {
	graph, err := s.GraphRevenue(ctx, storeID)
	if err != nil {
		return Overview{}, err
	}
	sales, err := s.SalesCount(ctx, storeID)
	if err != nil {
		return Overview{}, err
	}
	stock, err := s.StockCount(ctx, storeID)
	if err != nil {
		return Overview{}, err
	}

	return Overview{
		TotalRevenue: graph.Sum(),
		SalesCount:   sales,
		StockCount:   stock,
		Graph:        graph,
	}, nil
}

func (s *Service) bucketer(ctx context.Context, storeID string) (Bucketer, error) {
	switch s.policy {
	case PolicyUTC:
		return NewBucketer(time.UTC), nil
	case PolicyStore:
		locator, ok := s.source.(StoreLocator)
		if !ok {
			return NewBucketer(nil), nil
		}
		name, err := locator.StoreTimeZone(ctx, storeID)
		if err != nil {
			return Bucketer{}, err
		}
		if name == "" {
			return NewBucketer(nil), nil
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			logger.WithStore(storeID).WithField("time_zone", name).
				Warn("unknown store time zone, using timestamp location")
			return NewBucketer(nil), nil
		}
		return NewBucketer(loc), nil
	default:
		return NewBucketer(nil), nil
	}
}
