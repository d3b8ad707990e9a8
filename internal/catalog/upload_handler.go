package catalog

import (
	"io"
	"strings"

	"store-admin-backend/internal/logger"
	"store-admin-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

const maxUploadBytes = 5 << 20

// POST /api/:storeId/uploads (multipart "file")
// Stores the image under the store's prefix and returns its public URL for
// use in billboard and product bodies.
func UploadImageHandler(objects storage.ObjectStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeID := c.Params("storeId")

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "file is required")
		}
		if fileHeader.Size > maxUploadBytes {
			return fiber.NewError(fiber.StatusRequestEntityTooLarge, "Image must be at most 5 MB")
		}
		contentType := fileHeader.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			return fiber.NewError(fiber.StatusBadRequest, "Only image files can be uploaded")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "File could not be read")
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "File could not be read")
		}

		url, err := objects.Upload(c.UserContext(), data, contentType, storeID)
		if err != nil {
			logger.WithStore(storeID).WithError(err).Error("image upload failed")
			return fiber.NewError(fiber.StatusBadGateway, "Image could not be uploaded")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
	}
}
