package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Peace-Corp/modoo-shop-admin/internal/domain"
)

type BrandRepo struct{ db *gorm.DB }

func NewBrandRepo(db *gorm.DB) *BrandRepo { return &BrandRepo{db: db} }

func (r *BrandRepo) List(ctx context.Context) ([]domain.Brand, error) {
	var list []domain.Brand
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, errors.Wrap(err, "list brands")
	}
	return list, nil
}

func (r *BrandRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Brand, error) {
	var b domain.Brand
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, errors.Wrap(err, "find brand")
	}
	return &b, nil
}

func (r *BrandRepo) Save(ctx context.Context, b *domain.Brand) error {
	return errors.Wrap(r.db.WithContext(ctx).Save(b).Error, "save brand")
}

func (r *BrandRepo) CountProducts(ctx context.Context, brandID uuid.UUID) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Product{}).Where("brand_id = ?", brandID).Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, "count brand products")
	}
	return n, nil
}

func (r *BrandRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Brand{}).Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, "count brands")
	}
	return n, nil
}

// Delete runs the product-count guard and the delete in one transaction so a
// concurrent product insert cannot slip between the check and the write.
func (r *BrandRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&domain.Product{}).Where("brand_id = ?", id).Count(&n).Error; err != nil {
			return errors.Wrap(err, "count brand products")
		}
		if n > 0 {
			return &domain.ConflictError{Products: n}
		}
		res := tx.Delete(&domain.Brand{}, "id = ?", id)
		if res.Error != nil {
			return errors.Wrap(res.Error, "delete brand")
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}
