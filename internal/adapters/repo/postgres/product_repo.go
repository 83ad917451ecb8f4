package postgres

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Peace-Corp/modoo-shop-admin/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, int64, error) {
	var list []domain.Product
	q := r.db.WithContext(ctx).Model(&domain.Product{})
	if f.BrandID != nil {
		q = q.Where("brand_id = ?", *f.BrandID)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Featured != nil {
		q = q.Where("featured = ?", *f.Featured)
	}
	if f.Query != "" {
		like := "%" + strings.TrimSpace(f.Query) + "%"
		q = q.Where("LOWER(name) LIKE LOWER(?)", like)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count products")
	}
	switch f.Sort {
	case "price_desc":
		q = q.Order("price desc")
	case "price_asc":
		q = q.Order("price asc")
	case "newest":
		q = q.Order("created_at desc")
	default:
		q = q.Order("name asc")
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 20
	}
	offset := (f.Page - 1) * f.PageSize
	err := q.Offset(offset).Limit(f.PageSize).
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order asc") }).
		Find(&list).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "list products")
	}
	return list, total, nil
}

func (r *ProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order asc") }).
		First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, errors.Wrap(err, "find product")
	}
	return &p, nil
}

func (r *ProductRepo) Save(ctx context.Context, p *domain.Product) error {
	return errors.Wrap(r.db.WithContext(ctx).Omit("Variants").Save(p).Error, "save product")
}

func (r *ProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&domain.ProductVariant{}).Error; err != nil {
			return errors.Wrap(err, "delete product variants")
		}
		res := tx.Delete(&domain.Product{}, "id = ?", id)
		if res.Error != nil {
			return errors.Wrap(res.Error, "delete product")
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (r *ProductRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, "count products")
	}
	return n, nil
}

// --- variants ---

func (r *ProductRepo) ListVariants(ctx context.Context, productID uuid.UUID) ([]domain.ProductVariant, error) {
	var list []domain.ProductVariant
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("sort_order asc").Find(&list).Error; err != nil {
		return nil, errors.Wrap(err, "list variants")
	}
	return list, nil
}

func (r *ProductRepo) FindVariant(ctx context.Context, variantID uuid.UUID) (*domain.ProductVariant, error) {
	var v domain.ProductVariant
	if err := r.db.WithContext(ctx).First(&v, "id = ?", variantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, errors.Wrap(err, "find variant")
	}
	return &v, nil
}

func (r *ProductRepo) CreateVariant(ctx context.Context, v *domain.ProductVariant) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(v).Error; err != nil {
			return errors.Wrap(err, "create variant")
		}
		return rollupStock(tx, v.ProductID)
	})
}

func (r *ProductRepo) SaveVariant(ctx context.Context, v *domain.ProductVariant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(v).Error; err != nil {
			return errors.Wrap(err, "save variant")
		}
		return rollupStock(tx, v.ProductID)
	})
}

func (r *ProductRepo) DeleteVariant(ctx context.Context, variantID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var v domain.ProductVariant
		if err := tx.First(&v, "id = ?", variantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return errors.Wrap(err, "find variant")
		}
		if err := tx.Delete(&domain.ProductVariant{}, "id = ?", variantID).Error; err != nil {
			return errors.Wrap(err, "delete variant")
		}
		return rollupStock(tx, v.ProductID)
	})
}

func (r *ProductRepo) RecomputeStock(ctx context.Context, productID uuid.UUID) (int, error) {
	var stock int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := rollupStock(tx, productID); err != nil {
			return err
		}
		return tx.Model(&domain.Product{}).Where("id = ?", productID).Pluck("stock", &stock).Error
	})
	if err != nil {
		return 0, err
	}
	return stock, nil
}

// rollupStock rewrites the parent's denormalized stock total from the variant
// sum inside the caller's transaction, so the sum cannot be computed from a
// stale variant list.
func rollupStock(tx *gorm.DB, productID uuid.UUID) error {
	err := tx.Model(&domain.Product{}).Where("id = ?", productID).
		UpdateColumn("stock", gorm.Expr("(SELECT COALESCE(SUM(stock), 0) FROM product_variants WHERE product_id = ?)", productID)).Error
	return errors.Wrap(err, "rollup product stock")
}
