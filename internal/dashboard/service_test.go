package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"store-admin-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	orders   []models.Order
	paid     int64
	stock    int64
	timeZone string
	err      error
}

func (f *fakeSource) FetchPaidOrders(context.Context, string) ([]models.Order, error) {
	return f.orders, f.err
}

func (f *fakeSource) CountPaidOrders(context.Context, string) (int64, error) {
	return f.paid, f.err
}

func (f *fakeSource) CountInStockProducts(context.Context, string) (int64, error) {
	return f.stock, f.err
}

func (f *fakeSource) StoreTimeZone(context.Context, string) (string, error) {
	return f.timeZone, nil
}

func TestServiceOverview(t *testing.T) {
	src := &fakeSource{
		orders: []models.Order{
			order(2024, time.January, "10"),
			order(2024, time.February, "4.99", "9.99", "1.00"),
		},
		paid:  2,
		stock: 7,
	}
	svc := NewService(src, PolicyUTC)

	ov, err := svc.Overview(context.Background(), "store-1")
	require.NoError(t, err)

	assert.Equal(t, "25.98", ov.TotalRevenue.String())
	assert.Equal(t, int64(2), ov.SalesCount)
	assert.Equal(t, int64(7), ov.StockCount)
	assert.Equal(t, "15.98", ov.Graph[1].Total.String())

	total, err := svc.TotalRevenue(context.Background(), "store-1")
	require.NoError(t, err)
	assert.True(t, total.Equal(ov.Graph.Sum()))
}

func TestServicePropagatesDataAccessFault(t *testing.T) {
	cause := errors.New("connection reset")
	svc := NewService(&fakeSource{err: fmt.Errorf("%w: fetch: %w", ErrDataAccess, cause)}, PolicyLocal)

	_, err := svc.GraphRevenue(context.Background(), "store-1")
	assert.ErrorIs(t, err, ErrDataAccess)
	assert.ErrorIs(t, err, cause)

	_, err = svc.SalesCount(context.Background(), "store-1")
	assert.ErrorIs(t, err, ErrDataAccess)

	_, err = svc.StockCount(context.Background(), "store-1")
	assert.ErrorIs(t, err, ErrDataAccess)

	_, err = svc.Overview(context.Background(), "store-1")
	assert.ErrorIs(t, err, ErrDataAccess)
}

func TestServiceStorePolicy(t *testing.T) {
	// 2024-03-01 03:00 UTC is still February in New York.
	src := &fakeSource{
		orders: []models.Order{{
			CreatedAt: time.Date(2024, time.March, 1, 3, 0, 0, 0, time.UTC),
			Items:     order(2024, time.January, "12").Items,
		}},
		timeZone: "America/New_York",
	}

	r, err := NewService(src, PolicyStore).GraphRevenue(context.Background(), "store-1")
	require.NoError(t, err)
	assert.Equal(t, "12", r[1].Total.String())
	assert.True(t, r[2].Total.IsZero())

	r, err = NewService(src, PolicyUTC).GraphRevenue(context.Background(), "store-1")
	require.NoError(t, err)
	assert.Equal(t, "12", r[2].Total.String())
}

func TestServiceStorePolicyFallsBack(t *testing.T) {
	ts := time.Date(2024, time.March, 1, 3, 0, 0, 0, time.UTC)
	for _, tz := range []string{"", "Not/AZone"} {
		src := &fakeSource{
			orders:   []models.Order{{CreatedAt: ts, Items: order(2024, time.January, "1").Items}},
			timeZone: tz,
		}
		r, err := NewService(src, PolicyStore).GraphRevenue(context.Background(), "store-1")
		require.NoError(t, err, tz)
		assert.Equal(t, "1", r[2].Total.String(), tz)
	}
}

func TestNewServiceDefaultsToLocal(t *testing.T) {
	svc := NewService(&fakeSource{}, "")
	assert.Equal(t, PolicyLocal, svc.policy)
}
