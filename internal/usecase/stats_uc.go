package usecase

import (
	"context"
	"time"

	"github.com/Peace-Corp/modoo-shop-admin/internal/domain"
)

const dayFormat = "2006-01-02"

// defaultChartDays is the dashboard window when no range is given: the last
// seven calendar days including today.
const defaultChartDays = 7

type StatsUC struct {
	Orders   domain.OrderRepo
	Sales    domain.SalesRepo
	Products domain.ProductRepo
	Brands   domain.BrandRepo
}

// AggregateOrdersByDate buckets orders into one entry per calendar day from
// start to end inclusive, ascending, zero-filled for days without orders.
// Orders with a zero timestamp or a day outside the window are skipped.
// Pure function; timestamps are assumed already normalized by the caller.
func AggregateOrdersByDate(orders []domain.Order, start, end time.Time) []domain.DailyOrderStat {
	start = truncateDay(start)
	end = truncateDay(end)

	stats := []domain.DailyOrderStat{}
	index := make(map[string]int)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(dayFormat)
		index[key] = len(stats)
		stats = append(stats, domain.DailyOrderStat{Date: key})
	}

	for _, o := range orders {
		if o.CreatedAt.IsZero() {
			continue
		}
		i, ok := index[o.CreatedAt.Format(dayFormat)]
		if !ok {
			continue
		}
		stats[i].OrderCount++
		stats[i].TotalAmount += o.Total
	}
	return stats
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Dashboard assembles the admin landing numbers for [from, to] calendar days.
// Nil bounds default to the last seven days ending today.
func (uc *StatsUC) Dashboard(ctx context.Context, from, to *time.Time) (*domain.DashboardStats, error) {
	end := time.Now()
	if to != nil {
		end = *to
	}
	start := end.AddDate(0, 0, -(defaultChartDays - 1))
	if from != nil {
		start = *from
	}
	start = truncateDay(start)
	end = truncateDay(end)
	if start.After(end) {
		start, end = end, start
	}
	rangeEnd := end.AddDate(0, 0, 1) // exclusive upper bound for the query

	orders, err := uc.Orders.ListInRange(ctx, start, rangeEnd)
	if err != nil {
		return nil, err
	}
	recent, err := uc.Orders.Recent(ctx, start, rangeEnd, 5)
	if err != nil {
		return nil, err
	}
	sales, err := uc.Sales.Latest(ctx, 7)
	if err != nil {
		return nil, err
	}
	totalProducts, err := uc.Products.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalBrands, err := uc.Brands.Count(ctx)
	if err != nil {
		return nil, err
	}

	var totalOrderAmount int64
	for _, o := range orders {
		totalOrderAmount += o.Total
	}
	var totalRevenue int64
	for _, s := range sales {
		totalRevenue += s.Revenue
	}

	return &domain.DashboardStats{
		TotalRevenue:     totalRevenue,
		TotalOrders:      int64(len(orders)),
		TotalOrderAmount: totalOrderAmount,
		TotalProducts:    totalProducts,
		TotalBrands:      totalBrands,
		RecentOrders:     recent,
		SalesData:        sales,
		DailyOrderStats:  AggregateOrdersByDate(orders, start, end),
	}, nil
}
