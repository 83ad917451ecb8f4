package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}
	return false
}

// Order totals are integer KRW, no minor unit.
type Order struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID     `gorm:"type:uuid;index" json:"user_id"`
	Total           int64         `gorm:"type:bigint;not null" json:"total"`
	Status          OrderStatus   `gorm:"type:varchar(20);index" json:"status"`
	PaymentMethod   string        `gorm:"size:30" json:"payment_method"`
	PaymentStatus   PaymentStatus `gorm:"type:varchar(20);index" json:"payment_status"`
	ShippingStreet  string        `gorm:"size:255" json:"shipping_street"`
	ShippingCity    string        `gorm:"size:80" json:"shipping_city"`
	ShippingState   string        `gorm:"size:80" json:"shipping_state"`
	ShippingZipCode string        `gorm:"size:20" json:"shipping_zip_code"`
	ShippingCountry string        `gorm:"size:80" json:"shipping_country"`
	ShippingPhone   string        `gorm:"size:50" json:"shipping_phone"`
	Items           []OrderItem   `json:"items"`
	CreatedAt       time.Time     `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// OrderItem keeps PriceAtTime as a snapshot taken at purchase; it is never
// recomputed from the current product price.
type OrderItem struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID     uuid.UUID  `gorm:"type:uuid;index;not null" json:"order_id"`
	ProductID   uuid.UUID  `gorm:"type:uuid;index" json:"product_id"`
	VariantID   *uuid.UUID `gorm:"type:uuid;index" json:"variant_id"`
	Size        string     `gorm:"size:60" json:"size"`
	Quantity    int        `gorm:"not null" json:"quantity"`
	PriceAtTime int64      `gorm:"type:bigint;not null" json:"price_at_time"`
	CreatedAt   time.Time  `json:"created_at"`
}

type OrderFilter struct {
	From          *time.Time
	To            *time.Time
	Status        *OrderStatus
	PaymentStatus *PaymentStatus
	Page          int
	PageSize      int
}

type OrderRepo interface {
	List(ctx context.Context, f OrderFilter) ([]Order, int64, error)
	// ListInRange returns orders with from <= created_at < to, ascending.
	ListInRange(ctx context.Context, from, to time.Time) ([]Order, error)
	Recent(ctx context.Context, from, to time.Time, limit int) ([]Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status PaymentStatus) error
	// Delete removes the order and its items in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}
