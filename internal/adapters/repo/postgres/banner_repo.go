package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Peace-Corp/modoo-shop-admin/internal/domain"
)

type BannerRepo struct{ db *gorm.DB }

func NewBannerRepo(db *gorm.DB) *BannerRepo { return &BannerRepo{db: db} }

func (r *BannerRepo) ListHero(ctx context.Context) ([]domain.HeroBanner, error) {
	var list []domain.HeroBanner
	if err := r.db.WithContext(ctx).Order("display_order asc").Find(&list).Error; err != nil {
		return nil, errors.Wrap(err, "list hero banners")
	}
	return list, nil
}

func (r *BannerRepo) FindHero(ctx context.Context, id uuid.UUID) (*domain.HeroBanner, error) {
	var b domain.HeroBanner
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, errors.Wrap(err, "find hero banner")
	}
	return &b, nil
}

func (r *BannerRepo) SaveHero(ctx context.Context, b *domain.HeroBanner) error {
	return errors.Wrap(r.db.WithContext(ctx).Save(b).Error, "save hero banner")
}

func (r *BannerRepo) DeleteHero(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&domain.HeroBanner{}, "id = ?", id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete hero banner")
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BannerRepo) ListBrandHero(ctx context.Context, brandID uuid.UUID) ([]domain.BrandHeroBanner, error) {
	var list []domain.BrandHeroBanner
	if err := r.db.WithContext(ctx).Where("brand_id = ?", brandID).Order("display_order asc").Find(&list).Error; err != nil {
		return nil, errors.Wrap(err, "list brand hero banners")
	}
	return list, nil
}

func (r *BannerRepo) FindBrandHero(ctx context.Context, id uuid.UUID) (*domain.BrandHeroBanner, error) {
	var b domain.BrandHeroBanner
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, errors.Wrap(err, "find brand hero banner")
	}
	return &b, nil
}

func (r *BannerRepo) SaveBrandHero(ctx context.Context, b *domain.BrandHeroBanner) error {
	return errors.Wrap(r.db.WithContext(ctx).Save(b).Error, "save brand hero banner")
}

func (r *BannerRepo) DeleteBrandHero(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&domain.BrandHeroBanner{}, "id = ?", id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete brand hero banner")
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
