package dashboard

import (
	"errors"

	"store-admin-backend/internal/logger"
	"store-admin-backend/internal/money"

	"github.com/gofiber/fiber/v2"
)

type OverviewResponse struct {
	TotalRevenue          string       `json:"total_revenue"`
	TotalRevenueFormatted string       `json:"total_revenue_formatted"`
	Currency              string       `json:"currency"`
	SalesCount            int64        `json:"sales_count"`
	StockCount            int64        `json:"stock_count"`
	Graph                 []GraphPoint `json:"graph"`
}

// Data access faults surface as a generic 500; the cause only goes to the log.
func serviceError(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrDataAccess) {
		logger.WithStore(c.Params("storeId")).WithError(err).
			WithField("path", c.Path()).Error("dashboard query failed")
		return fiber.NewError(fiber.StatusInternalServerError, "Internal Error")
	}
	return err
}

// GET /api/:storeId/dashboard/revenue
func RevenueHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		report, err := svc.GraphRevenue(c.UserContext(), c.Params("storeId"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(report.Points())
	}
}

// GET /api/:storeId/dashboard/sales-count
func SalesCountHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := svc.SalesCount(c.UserContext(), c.Params("storeId"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"count": n})
	}
}

// GET /api/:storeId/dashboard/stock-count
func StockCountHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := svc.StockCount(c.UserContext(), c.Params("storeId"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"count": n})
	}
}

// GET /api/:storeId/dashboard
func OverviewHandler(svc *Service, fmtr money.Formatter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ov, err := svc.Overview(c.UserContext(), c.Params("storeId"))
		if err != nil {
			return serviceError(c, err)
		}

		return c.JSON(OverviewResponse{
			TotalRevenue:          ov.TotalRevenue.String(),
			TotalRevenueFormatted: fmtr.Format(ov.TotalRevenue),
			Currency:              fmtr.Currency(),
			SalesCount:            ov.SalesCount,
			StockCount:            ov.StockCount,
			Graph:                 ov.Graph.Points(),
		})
	}
}
