package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Peace-Corp/modoo-shop-admin/internal/domain"
	"github.com/Peace-Corp/modoo-shop-admin/internal/usecase"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
}

func TestAggregateOrdersByDate_ZeroFillsWindow(t *testing.T) {
	got := usecase.AggregateOrdersByDate(nil, day(2024, 3, 1), day(2024, 3, 5))

	require.Len(t, got, 5)
	for i, stat := range got {
		assert.Equal(t, day(2024, 3, 1).AddDate(0, 0, i).Format("2006-01-02"), stat.Date)
		assert.Equal(t, 0, stat.OrderCount)
		assert.Equal(t, int64(0), stat.TotalAmount)
	}
}

func TestAggregateOrdersByDate_EmptyWhenStartAfterEnd(t *testing.T) {
	got := usecase.AggregateOrdersByDate(nil, day(2024, 3, 5), day(2024, 3, 1))
	assert.Empty(t, got)
}

func TestAggregateOrdersByDate_BucketsByCalendarDay(t *testing.T) {
	orders := []domain.Order{
		{Total: 1000, CreatedAt: at(2024, 3, 2, 9)},
		{Total: 2500, CreatedAt: at(2024, 3, 2, 14)},
		{Total: 1500, CreatedAt: at(2024, 3, 2, 23)},
		{Total: 9000, CreatedAt: at(2024, 3, 4, 1)},
		{Total: 777, CreatedAt: at(2024, 2, 28, 12)}, // before the window
		{Total: 888, CreatedAt: at(2024, 3, 9, 12)},  // after the window
		{Total: 999},                                 // zero timestamp
	}

	got := usecase.AggregateOrdersByDate(orders, day(2024, 3, 1), day(2024, 3, 5))

	require.Len(t, got, 5)
	assert.Equal(t, domain.DailyOrderStat{Date: "2024-03-01"}, got[0])
	assert.Equal(t, domain.DailyOrderStat{Date: "2024-03-02", OrderCount: 3, TotalAmount: 5000}, got[1])
	assert.Equal(t, domain.DailyOrderStat{Date: "2024-03-03"}, got[2])
	assert.Equal(t, domain.DailyOrderStat{Date: "2024-03-04", OrderCount: 1, TotalAmount: 9000}, got[3])
	assert.Equal(t, domain.DailyOrderStat{Date: "2024-03-05"}, got[4])
}

func TestAggregateOrdersByDate_SumsAreExact(t *testing.T) {
	// Large KRW totals must not lose precision.
	orders := []domain.Order{
		{Total: 19_999_999_999, CreatedAt: at(2024, 3, 1, 10)},
		{Total: 1, CreatedAt: at(2024, 3, 1, 11)},
	}

	got := usecase.AggregateOrdersByDate(orders, day(2024, 3, 1), day(2024, 3, 1))

	require.Len(t, got, 1)
	assert.Equal(t, int64(20_000_000_000), got[0].TotalAmount)
	assert.Equal(t, 2, got[0].OrderCount)
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()

	orderRepo := newFakeOrderRepo()
	for _, o := range []domain.Order{
		{ID: uuid.New(), Total: 3000, Status: domain.OrderStatusPending, CreatedAt: at(2024, 3, 2, 9)},
		{ID: uuid.New(), Total: 7000, Status: domain.OrderStatusShipped, CreatedAt: at(2024, 3, 4, 18)},
		{ID: uuid.New(), Total: 999, Status: domain.OrderStatusPending, CreatedAt: at(2024, 2, 1, 9)}, // outside range
	} {
		o := o
		orderRepo.orders[o.ID] = &o
	}

	productRepo := newFakeProductRepo()
	brandRepo := newFakeBrandRepo(productRepo)
	brand := domain.Brand{ID: uuid.New(), Name: "test brand"}
	require.NoError(t, brandRepo.Save(ctx, &brand))
	require.NoError(t, productRepo.Save(ctx, &domain.Product{ID: uuid.New(), BrandID: brand.ID, Name: "hoodie"}))

	uc := &usecase.StatsUC{
		Orders:   orderRepo,
		Sales:    &fakeSalesRepo{rows: []domain.SalesData{{Date: day(2024, 3, 3), Revenue: 5000, Orders: 2}}},
		Products: productRepo,
		Brands:   brandRepo,
	}

	from, to := day(2024, 3, 1), day(2024, 3, 5)
	stats, err := uc.Dashboard(ctx, &from, &to)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalOrders)
	assert.Equal(t, int64(10000), stats.TotalOrderAmount)
	assert.Equal(t, int64(5000), stats.TotalRevenue)
	assert.Equal(t, int64(1), stats.TotalProducts)
	assert.Equal(t, int64(1), stats.TotalBrands)
	require.Len(t, stats.RecentOrders, 2)
	assert.Equal(t, int64(7000), stats.RecentOrders[0].Total) // newest first

	require.Len(t, stats.DailyOrderStats, 5)
	assert.Equal(t, domain.DailyOrderStat{Date: "2024-03-02", OrderCount: 1, TotalAmount: 3000}, stats.DailyOrderStats[1])
	assert.Equal(t, domain.DailyOrderStat{Date: "2024-03-04", OrderCount: 1, TotalAmount: 7000}, stats.DailyOrderStats[3])
}

func TestDashboard_SwapsInvertedBounds(t *testing.T) {
	ctx := context.Background()

	orderRepo := newFakeOrderRepo()
	o := domain.Order{ID: uuid.New(), Total: 1200, CreatedAt: at(2024, 3, 3, 8)}
	orderRepo.orders[o.ID] = &o

	productRepo := newFakeProductRepo()
	uc := &usecase.StatsUC{
		Orders:   orderRepo,
		Sales:    &fakeSalesRepo{},
		Products: productRepo,
		Brands:   newFakeBrandRepo(productRepo),
	}

	from, to := day(2024, 3, 5), day(2024, 3, 1)
	stats, err := uc.Dashboard(ctx, &from, &to)
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.TotalOrders)
	require.Len(t, stats.DailyOrderStats, 5)
	assert.Equal(t, "2024-03-01", stats.DailyOrderStats[0].Date)
	assert.Equal(t, "2024-03-05", stats.DailyOrderStats[4].Date)
}
