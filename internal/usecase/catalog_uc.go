package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Peace-Corp/modoo-shop-admin/internal/domain"
)

type CatalogUC struct {
	Products domain.ProductRepo
}

func (uc *CatalogUC) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, int64, error) {
	if f.PageSize == 0 {
		f.PageSize = 20
	}
	return uc.Products.List(ctx, f)
}

func (uc *CatalogUC) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return uc.Products.FindByID(ctx, id)
}

func (uc *CatalogUC) Create(ctx context.Context, p *domain.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return uc.Products.Save(ctx, p)
}

func (uc *CatalogUC) Update(ctx context.Context, p *domain.Product) error {
	if p.ID == uuid.Nil {
		return &domain.ValidationError{Field: "id", Msg: "required"}
	}
	if err := validateProduct(p); err != nil {
		return err
	}
	if _, err := uc.Products.FindByID(ctx, p.ID); err != nil {
		return err
	}
	return uc.Products.Save(ctx, p)
}

func (uc *CatalogUC) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.Products.Delete(ctx, id)
}

func validateProduct(p *domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return &domain.ValidationError{Field: "name", Msg: "must not be empty"}
	}
	if p.Price < 0 {
		return &domain.ValidationError{Field: "price", Msg: "must not be negative"}
	}
	if p.Stock < 0 {
		return &domain.ValidationError{Field: "stock", Msg: "must not be negative"}
	}
	return nil
}

// --- variants ---

func (uc *CatalogUC) ListVariants(ctx context.Context, productID uuid.UUID) ([]domain.ProductVariant, error) {
	return uc.Products.ListVariants(ctx, productID)
}

func (uc *CatalogUC) CreateVariant(ctx context.Context, productID uuid.UUID, size string, stock, sortOrder int) (*domain.ProductVariant, error) {
	size = strings.TrimSpace(size)
	if size == "" {
		return nil, &domain.ValidationError{Field: "size", Msg: "must not be empty"}
	}
	if stock < 0 {
		return nil, &domain.ValidationError{Field: "stock", Msg: "must not be negative"}
	}
	if _, err := uc.Products.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	v := &domain.ProductVariant{
		ID:        uuid.New(),
		ProductID: productID,
		Size:      size,
		Stock:     stock,
		SortOrder: sortOrder,
	}
	if err := uc.Products.CreateVariant(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// VariantUpdate carries optional fields of a variant PATCH; nil means keep.
type VariantUpdate struct {
	Size      *string
	Stock     *int
	SortOrder *int
}

func (uc *CatalogUC) UpdateVariant(ctx context.Context, variantID uuid.UUID, upd VariantUpdate) (*domain.ProductVariant, error) {
	if upd.Size != nil && strings.TrimSpace(*upd.Size) == "" {
		return nil, &domain.ValidationError{Field: "size", Msg: "must not be empty"}
	}
	if upd.Stock != nil && *upd.Stock < 0 {
		return nil, &domain.ValidationError{Field: "stock", Msg: "must not be negative"}
	}
	v, err := uc.Products.FindVariant(ctx, variantID)
	if err != nil {
		return nil, err
	}
	if upd.Size != nil {
		v.Size = strings.TrimSpace(*upd.Size)
	}
	if upd.Stock != nil {
		v.Stock = *upd.Stock
	}
	if upd.SortOrder != nil {
		v.SortOrder = *upd.SortOrder
	}
	if err := uc.Products.SaveVariant(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (uc *CatalogUC) DeleteVariant(ctx context.Context, variantID uuid.UUID) error {
	if variantID == uuid.Nil {
		return &domain.ValidationError{Field: "id", Msg: "required"}
	}
	return uc.Products.DeleteVariant(ctx, variantID)
}

func (uc *CatalogUC) RecomputeStock(ctx context.Context, productID uuid.UUID) (int, error) {
	return uc.Products.RecomputeStock(ctx, productID)
}
