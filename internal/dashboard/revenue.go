package dashboard

import (
	"encoding/json"
	"time"

	"store-admin-backend/internal/models"

	"github.com/shopspring/decimal"
)

const MonthsInYear = 12

// Bucket: one month slot of the revenue report.
type Bucket struct {
	Index int
	Label string
	Total decimal.Decimal
}

// Report holds exactly one bucket per month, January first. A month with
// no paid orders keeps a zero total.
type Report [MonthsInYear]Bucket

// GraphPoint is the wire shape existing chart consumers read.
type GraphPoint struct {
	Name  string      `json:"name"`
	Total json.Number `json:"total"`
}

// Aggregate folds the line item prices of each order into the bucket of the
// order's creation month. The caller supplies only paid orders of a single
// store; Aggregate does no filtering of its own.
func Aggregate(orders []models.Order, b Bucketer) Report {
	var acc [MonthsInYear]decimal.Decimal
	for i := range acc {
		acc[i] = decimal.Zero
	}

	for _, o := range orders {
		orderTotal := decimal.Zero
		for _, it := range o.Items {
			orderTotal = orderTotal.Add(it.UnitPrice)
		}
		idx := b.BucketFor(o.CreatedAt)
		acc[idx] = acc[idx].Add(orderTotal)
	}

	var r Report
	for i := range r {
		r[i] = Bucket{
			Index: i,
			Label: time.Month(i + 1).String(),
			Total: acc[i],
		}
	}
	return r
}

// Sum is the total across all buckets.
func (r Report) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, b := range r {
		sum = sum.Add(b.Total)
	}
	return sum
}

func (r Report) Points() []GraphPoint {
	points := make([]GraphPoint, 0, MonthsInYear)
	for _, b := range r {
		points = append(points, GraphPoint{
			Name:  b.Label,
			Total: json.Number(b.Total.String()),
		})
	}
	return points
}
