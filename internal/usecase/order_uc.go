package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Peace-Corp/modoo-shop-admin/internal/domain"
)

type OrderUC struct {
	Orders domain.OrderRepo
}

func (uc *OrderUC) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, int64, error) {
	if f.PageSize == 0 {
		f.PageSize = 20
	}
	if f.Status != nil && !f.Status.Valid() {
		return nil, 0, &domain.ValidationError{Field: "status", Msg: "unknown value"}
	}
	if f.PaymentStatus != nil && !f.PaymentStatus.Valid() {
		return nil, 0, &domain.ValidationError{Field: "payment_status", Msg: "unknown value"}
	}
	return uc.Orders.List(ctx, f)
}

func (uc *OrderUC) Get(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return uc.Orders.FindByID(ctx, id)
}

func (uc *OrderUC) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error {
	if !status.Valid() {
		return &domain.ValidationError{Field: "status", Msg: "unknown value"}
	}
	return uc.Orders.UpdateStatus(ctx, id, status)
}

func (uc *OrderUC) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus) error {
	if !status.Valid() {
		return &domain.ValidationError{Field: "payment_status", Msg: "unknown value"}
	}
	return uc.Orders.UpdatePaymentStatus(ctx, id, status)
}

func (uc *OrderUC) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.Orders.Delete(ctx, id)
}

// ListRange returns all orders of the inclusive [from, to] calendar-day window,
// oldest first. Used by the sales export and the dashboard.
func (uc *OrderUC) ListRange(ctx context.Context, from, to time.Time) ([]domain.Order, error) {
	from = truncateDay(from)
	to = truncateDay(to)
	if from.After(to) {
		from, to = to, from
	}
	return uc.Orders.ListInRange(ctx, from, to.AddDate(0, 0, 1))
}
