package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Peace-Corp/modoo-shop-admin/internal/domain"
)

type SalesRepo struct{ db *gorm.DB }

func NewSalesRepo(db *gorm.DB) *SalesRepo { return &SalesRepo{db: db} }

func (r *SalesRepo) Latest(ctx context.Context, limit int) ([]domain.SalesData, error) {
	var list []domain.SalesData
	if err := r.db.WithContext(ctx).Order("date desc").Limit(limit).Find(&list).Error; err != nil {
		return nil, errors.Wrap(err, "latest sales data")
	}
	return list, nil
}
