package main

import (
	"store-admin-backend/internal/audit"
	"store-admin-backend/internal/auth"
	"store-admin-backend/internal/catalog"
	"store-admin-backend/internal/config"
	"store-admin-backend/internal/dashboard"
	"store-admin-backend/internal/money"
	"store-admin-backend/internal/storage"
	"store-admin-backend/internal/stores"

	"github.com/gofiber/fiber/v2"
)

type deps struct {
	dashboard *dashboard.Service
	formatter money.Formatter
	objects   storage.ObjectStore
}

func registerRoutes(app *fiber.App, cfg *config.Config, d deps) {
	api := app.Group("/api")

	if cfg.LocalAuthEnabled {
		api.Post("/auth/register", auth.RegisterHandler())
		api.Post("/auth/login", auth.LoginHandler(cfg))
	}

	authed := auth.JWTMiddleware(cfg)
	owner := []fiber.Handler{authed, auth.RequireStoreOwner()}
	// guard prepends the owner check to a store-scoped handler.
	guard := func(h fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, owner...), h)
	}

	api.Get("/auth/me", authed, auth.MeHandler())

	// Stores (registered before the /:storeId routes)
	api.Post("/stores", authed, stores.CreateStoreHandler())
	api.Get("/stores", authed, stores.ListStoresHandler())
	api.Get("/stores/:storeId", guard(stores.GetStoreHandler())...)
	api.Patch("/stores/:storeId", guard(stores.UpdateStoreHandler())...)
	api.Delete("/stores/:storeId", guard(stores.DeleteStoreHandler(d.objects))...)

	s := api.Group("/:storeId")

	// Storefront reads are public.
	s.Get("/billboards", catalog.ListBillboardsHandler())
	s.Get("/billboards/:billboardId", catalog.GetBillboardHandler())
	s.Post("/billboards", guard(catalog.CreateBillboardHandler())...)
	s.Patch("/billboards/:billboardId", guard(catalog.UpdateBillboardHandler(d.objects))...)
	s.Delete("/billboards/:billboardId", guard(catalog.DeleteBillboardHandler(d.objects))...)

	s.Get("/categories", catalog.ListCategoriesHandler())
	s.Get("/categories/:categoryId", catalog.GetCategoryHandler())
	s.Post("/categories", guard(catalog.CreateCategoryHandler())...)
	s.Patch("/categories/:categoryId", guard(catalog.UpdateCategoryHandler())...)
	s.Delete("/categories/:categoryId", guard(catalog.DeleteCategoryHandler())...)

	s.Get("/sizes", catalog.ListSizesHandler())
	s.Get("/sizes/:sizeId", catalog.GetSizeHandler())
	s.Post("/sizes", guard(catalog.CreateSizeHandler())...)
	s.Patch("/sizes/:sizeId", guard(catalog.UpdateSizeHandler())...)
	s.Delete("/sizes/:sizeId", guard(catalog.DeleteSizeHandler())...)

	s.Get("/colors", catalog.ListColorsHandler())
	s.Get("/colors/:colorId", catalog.GetColorHandler())
	s.Post("/colors", guard(catalog.CreateColorHandler())...)
	s.Patch("/colors/:colorId", guard(catalog.UpdateColorHandler())...)
	s.Delete("/colors/:colorId", guard(catalog.DeleteColorHandler())...)

	s.Get("/products", catalog.ListProductsHandler())
	s.Get("/products/:productId", catalog.GetProductHandler())
	s.Post("/products", guard(catalog.CreateProductHandler())...)
	s.Patch("/products/:productId", guard(catalog.UpdateProductHandler(d.objects))...)
	s.Delete("/products/:productId", guard(catalog.DeleteProductHandler(d.objects))...)

	s.Post("/uploads", guard(catalog.UploadImageHandler(d.objects))...)

	// Orders
	s.Get("/orders", guard(catalog.ListOrdersHandler())...)
	s.Post("/orders", guard(catalog.CreateOrderHandler())...)
	s.Patch("/orders/:orderId/paid", guard(catalog.MarkOrderPaidHandler())...)

	// Dashboard
	s.Get("/dashboard", guard(dashboard.OverviewHandler(d.dashboard, d.formatter))...)
	s.Get("/dashboard/revenue", guard(dashboard.RevenueHandler(d.dashboard))...)
	s.Get("/dashboard/revenue/export", guard(dashboard.ExportRevenueHandler(d.dashboard))...)
	s.Get("/dashboard/sales-count", guard(dashboard.SalesCountHandler(d.dashboard))...)
	s.Get("/dashboard/stock-count", guard(dashboard.StockCountHandler(d.dashboard))...)

	s.Get("/audit-logs", guard(audit.ListAuditLogsHandler())...)
}
