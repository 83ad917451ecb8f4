package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Peace-Corp/modoo-shop-admin/internal/domain"
)

type BannerUC struct {
	Banners domain.BannerRepo
}

func (uc *BannerUC) ListHero(ctx context.Context) ([]domain.HeroBanner, error) {
	return uc.Banners.ListHero(ctx)
}

func (uc *BannerUC) CreateHero(ctx context.Context, b *domain.HeroBanner) error {
	if err := validateBanner(b.Title, b.ImageLink); err != nil {
		return err
	}
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return uc.Banners.SaveHero(ctx, b)
}

func (uc *BannerUC) UpdateHero(ctx context.Context, b *domain.HeroBanner) error {
	if b.ID == uuid.Nil {
		return &domain.ValidationError{Field: "id", Msg: "required"}
	}
	if err := validateBanner(b.Title, b.ImageLink); err != nil {
		return err
	}
	if _, err := uc.Banners.FindHero(ctx, b.ID); err != nil {
		return err
	}
	return uc.Banners.SaveHero(ctx, b)
}

func (uc *BannerUC) DeleteHero(ctx context.Context, id uuid.UUID) error {
	return uc.Banners.DeleteHero(ctx, id)
}

func (uc *BannerUC) ListBrandHero(ctx context.Context, brandID uuid.UUID) ([]domain.BrandHeroBanner, error) {
	return uc.Banners.ListBrandHero(ctx, brandID)
}

func (uc *BannerUC) CreateBrandHero(ctx context.Context, b *domain.BrandHeroBanner) error {
	if b.BrandID == uuid.Nil {
		return &domain.ValidationError{Field: "brand_id", Msg: "required"}
	}
	if err := validateBanner(b.Title, b.ImageLink); err != nil {
		return err
	}
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return uc.Banners.SaveBrandHero(ctx, b)
}

func (uc *BannerUC) UpdateBrandHero(ctx context.Context, b *domain.BrandHeroBanner) error {
	if b.ID == uuid.Nil {
		return &domain.ValidationError{Field: "id", Msg: "required"}
	}
	if err := validateBanner(b.Title, b.ImageLink); err != nil {
		return err
	}
	if _, err := uc.Banners.FindBrandHero(ctx, b.ID); err != nil {
		return err
	}
	return uc.Banners.SaveBrandHero(ctx, b)
}

func (uc *BannerUC) DeleteBrandHero(ctx context.Context, id uuid.UUID) error {
	return uc.Banners.DeleteBrandHero(ctx, id)
}

func validateBanner(title, imageLink string) error {
	if strings.TrimSpace(title) == "" {
		return &domain.ValidationError{Field: "title", Msg: "must not be empty"}
	}
	if strings.TrimSpace(imageLink) == "" {
		return &domain.ValidationError{Field: "image_link", Msg: "must not be empty"}
	}
	return nil
}
