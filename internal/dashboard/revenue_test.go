package dashboard

import (
	"encoding/json"
	"testing"
	"time"

	"store-admin-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func order(year int, month time.Month, prices ...string) models.Order {
	o := models.Order{
		StoreID:   "store-1",
		IsPaid:    true,
		CreatedAt: time.Date(year, month, 15, 12, 0, 0, 0, time.UTC),
	}
	for _, p := range prices {
		o.Items = append(o.Items, models.OrderItem{UnitPrice: decimal.RequireFromString(p)})
	}
	return o
}

func totals(r Report) []string {
	out := make([]string, 0, MonthsInYear)
	for _, b := range r {
		out = append(out, b.Total.StringFixed(2))
	}
	return out
}

func TestAggregateGroupsByMonth(t *testing.T) {
	orders := []models.Order{
		order(2024, time.January, "10"),
		order(2024, time.January, "5"),
		order(2024, time.February, "20"),
	}

	r := Aggregate(orders, NewBucketer(time.UTC))

	assert.Equal(t, []string{
		"15.00", "20.00", "0.00", "0.00", "0.00", "0.00",
		"0.00", "0.00", "0.00", "0.00", "0.00", "0.00",
	}, totals(r))
	assert.Equal(t, "January", r[0].Label)
	assert.Equal(t, "February", r[1].Label)
	assert.Equal(t, "December", r[11].Label)
}

func TestAggregateEmpty(t *testing.T) {
	r := Aggregate(nil, NewBucketer(nil))

	for i, b := range r {
		assert.Equal(t, i, b.Index)
		assert.Equal(t, time.Month(i+1).String(), b.Label)
		assert.True(t, b.Total.IsZero(), "bucket %d", i)
	}
	assert.True(t, r.Sum().IsZero())
}

func TestAggregateDecimalExact(t *testing.T) {
	r := Aggregate([]models.Order{order(2024, time.March, "4.99", "9.99", "1.00")}, NewBucketer(nil))

	assert.True(t, r[2].Total.Equal(decimal.RequireFromString("15.98")), r[2].Total.String())
	assert.Equal(t, "15.98", r[2].Total.String())
}

func TestAggregateFoldsYears(t *testing.T) {
	orders := []models.Order{
		order(2023, time.June, "7.50"),
		order(2024, time.June, "2.50"),
		order(2025, time.June, "1"),
	}

	r := Aggregate(orders, NewBucketer(nil))

	assert.Equal(t, "11.00", r[5].Total.StringFixed(2))
	assert.True(t, r.Sum().Equal(r[5].Total))
}

func TestAggregateOrderWithoutItems(t *testing.T) {
	r := Aggregate([]models.Order{order(2024, time.April)}, NewBucketer(nil))

	assert.True(t, r.Sum().IsZero())
}

func TestAggregateConservesTotal(t *testing.T) {
	orders := []models.Order{
		order(2024, time.January, "0.10", "0.20"),
		order(2024, time.May, "19.99"),
		order(2024, time.September, "0.01", "0.01", "0.01"),
		order(2024, time.December, "1000"),
	}
	want := decimal.Zero
	for _, o := range orders {
		want = want.Add(o.Total())
	}

	r := Aggregate(orders, NewBucketer(nil))

	assert.True(t, r.Sum().Equal(want), "sum %s want %s", r.Sum(), want)
}

func TestAggregateOrderIndependent(t *testing.T) {
	orders := []models.Order{
		order(2024, time.January, "3.33"),
		order(2024, time.July, "1.10"),
		order(2024, time.January, "6.67"),
		order(2024, time.October, "2"),
	}
	reversed := make([]models.Order, len(orders))
	for i, o := range orders {
		reversed[len(orders)-1-i] = o
	}

	a := Aggregate(orders, NewBucketer(nil))
	b := Aggregate(reversed, NewBucketer(nil))
	c := Aggregate(orders, NewBucketer(nil))

	assert.Equal(t, totals(a), totals(b))
	assert.Equal(t, totals(a), totals(c))
}

func TestReportPointsJSON(t *testing.T) {
	r := Aggregate([]models.Order{order(2024, time.January, "10.5")}, NewBucketer(nil))

	raw, err := json.Marshal(r.Points())
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Len(t, got, MonthsInYear)
	assert.Equal(t, "January", got[0]["name"])
	assert.Equal(t, 10.5, got[0]["total"])
	assert.Equal(t, float64(0), got[11]["total"])
}
