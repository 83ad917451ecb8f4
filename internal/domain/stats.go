package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SalesData is a precomputed daily revenue rollup maintained outside this
// service; the dashboard only reads it.
type SalesData struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Date      time.Time `gorm:"type:date;uniqueIndex" json:"date"`
	Revenue   int64     `gorm:"type:bigint;not null" json:"revenue"`
	Orders    int       `gorm:"not null;default:0" json:"orders"`
	CreatedAt time.Time `json:"created_at"`
}

// DailyOrderStat is one day of the dashboard chart, derived, never persisted.
type DailyOrderStat struct {
	Date        string `json:"date"`
	OrderCount  int    `json:"orderCount"`
	TotalAmount int64  `json:"totalAmount"`
}

type DashboardStats struct {
	TotalRevenue     int64            `json:"totalRevenue"`
	TotalOrders      int64            `json:"totalOrders"`
	TotalOrderAmount int64            `json:"totalOrderAmount"`
	TotalProducts    int64            `json:"totalProducts"`
	TotalBrands      int64            `json:"totalBrands"`
	RecentOrders     []Order          `json:"recentOrders"`
	SalesData        []SalesData      `json:"salesData"`
	DailyOrderStats  []DailyOrderStat `json:"dailyOrderStats"`
}

type SalesRepo interface {
	// Latest returns up to limit rows, newest date first.
	Latest(ctx context.Context, limit int) ([]SalesData, error)
}
