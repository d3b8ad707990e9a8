package dashboard

import (
	"bytes"
	"fmt"

	"store-admin-backend/internal/auth"
	"store-admin-backend/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

const revenueSheet = "Revenue"

// WriteRevenueWorkbook renders the report as a two-column sheet, one row per
// month followed by a total row.
func WriteRevenueWorkbook(r Report, storeName string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", revenueSheet); err != nil {
		return nil, err
	}

	rows := [][]any{{"Month", "Revenue"}}
	for _, b := range r {
		rows = append(rows, []any{b.Label, b.Total.InexactFloat64()})
	}
	rows = append(rows, []any{"Total", r.Sum().InexactFloat64()})

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(revenueSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	last := len(rows)
	if err := f.SetCellStyle(revenueSheet, "A1", "B1", bold); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(revenueSheet, fmt.Sprintf("A%d", last), fmt.Sprintf("B%d", last), bold); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(revenueSheet, "A", "B", 16); err != nil {
		return nil, err
	}
	if storeName != "" {
		if err := f.SetDocProps(&excelize.DocProperties{Title: storeName + " revenue"}); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}

// GET /api/:storeId/dashboard/revenue/export
func ExportRevenueHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeID := c.Params("storeId")

		report, err := svc.GraphRevenue(c.UserContext(), storeID)
		if err != nil {
			return serviceError(c, err)
		}

		storeName := ""
		if s := auth.CurrentStore(c); s != nil {
			storeName = s.Name
		}

		buf, err := WriteRevenueWorkbook(report, storeName)
		if err != nil {
			logger.WithStore(storeID).WithError(err).Error("revenue export failed")
			return fiber.NewError(fiber.StatusInternalServerError, "Export could not be generated")
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="revenue.xlsx"`)
		return c.Send(buf.Bytes())
	}
}
