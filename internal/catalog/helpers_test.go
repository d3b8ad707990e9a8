package catalog

import (
	"testing"

	"store-admin-backend/internal/auth"
	"store-admin-backend/internal/testutil"

	"github.com/gofiber/fiber/v2"
)

const owner = "owner-1"

// newCatalogApp mounts the catalog routes the way the server does.
func newCatalogApp(t *testing.T, objects *testutil.ObjectStore) *fiber.App {
	t.Helper()
	cfg := testutil.Config()
	app := testutil.NewApp()
	guard := func(h fiber.Handler) []fiber.Handler {
		return []fiber.Handler{auth.JWTMiddleware(cfg), auth.RequireStoreOwner(), h}
	}

	s := app.Group("/api/:storeId")
	s.Get("/billboards", ListBillboardsHandler())
	s.Get("/billboards/:billboardId", GetBillboardHandler())
	s.Post("/billboards", guard(CreateBillboardHandler())...)
	s.Patch("/billboards/:billboardId", guard(UpdateBillboardHandler(objects))...)
	s.Delete("/billboards/:billboardId", guard(DeleteBillboardHandler(objects))...)

	s.Get("/categories", ListCategoriesHandler())
	s.Post("/categories", guard(CreateCategoryHandler())...)
	s.Patch("/categories/:categoryId", guard(UpdateCategoryHandler())...)
	s.Delete("/categories/:categoryId", guard(DeleteCategoryHandler())...)

	s.Get("/sizes", ListSizesHandler())
	s.Post("/sizes", guard(CreateSizeHandler())...)
	s.Delete("/sizes/:sizeId", guard(DeleteSizeHandler())...)

	s.Get("/colors", ListColorsHandler())
	s.Get("/colors/:colorId", GetColorHandler())
	s.Post("/colors", guard(CreateColorHandler())...)
	s.Patch("/colors/:colorId", guard(UpdateColorHandler())...)
	s.Delete("/colors/:colorId", guard(DeleteColorHandler())...)

	s.Get("/products", ListProductsHandler())
	s.Get("/products/:productId", GetProductHandler())
	s.Post("/products", guard(CreateProductHandler())...)
	s.Patch("/products/:productId", guard(UpdateProductHandler(objects))...)
	s.Delete("/products/:productId", guard(DeleteProductHandler(objects))...)

	s.Post("/uploads", guard(UploadImageHandler(objects))...)

	s.Get("/orders", guard(ListOrdersHandler())...)
	s.Post("/orders", guard(CreateOrderHandler())...)
	s.Patch("/orders/:orderId/paid", guard(MarkOrderPaidHandler())...)
	return app
}
