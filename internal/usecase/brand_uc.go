package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Peace-Corp/modoo-shop-admin/internal/domain"
)

type BrandUC struct {
	Brands domain.BrandRepo
}

func (uc *BrandUC) List(ctx context.Context) ([]domain.Brand, error) {
	return uc.Brands.List(ctx)
}

func (uc *BrandUC) Get(ctx context.Context, id uuid.UUID) (*domain.Brand, error) {
	return uc.Brands.FindByID(ctx, id)
}

func (uc *BrandUC) Create(ctx context.Context, b *domain.Brand) error {
	if strings.TrimSpace(b.Name) == "" {
		return &domain.ValidationError{Field: "name", Msg: "must not be empty"}
	}
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Slug == "" {
		b.Slug = slugify(b.Name)
	}
	return uc.Brands.Save(ctx, b)
}

func (uc *BrandUC) Update(ctx context.Context, b *domain.Brand) error {
	if b.ID == uuid.Nil {
		return &domain.ValidationError{Field: "id", Msg: "required"}
	}
	if strings.TrimSpace(b.Name) == "" {
		return &domain.ValidationError{Field: "name", Msg: "must not be empty"}
	}
	if _, err := uc.Brands.FindByID(ctx, b.ID); err != nil {
		return err
	}
	return uc.Brands.Save(ctx, b)
}

// CanDelete reports whether the brand owns no products, plus the count so the
// caller can render a message when blocked.
func (uc *BrandUC) CanDelete(ctx context.Context, id uuid.UUID) (bool, int64, error) {
	n, err := uc.Brands.CountProducts(ctx, id)
	if err != nil {
		return false, 0, err
	}
	return n == 0, n, nil
}

// Delete rejects with ConflictError while the brand still owns products. The
// guard and the delete run in one transaction inside the repo.
func (uc *BrandUC) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.Brands.Delete(ctx, id)
}

func slugify(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "-"))
}
