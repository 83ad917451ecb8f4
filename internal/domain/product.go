package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	BrandID          uuid.UUID        `gorm:"type:uuid;index;not null" json:"brand_id"`
	Name             string           `gorm:"size:180;not null" json:"name"`
	Description      string           `gorm:"type:text" json:"description"`
	Price            int64            `gorm:"type:bigint;not null" json:"price"`
	OriginalPrice    *int64           `gorm:"type:bigint" json:"original_price"`
	Images           []string         `gorm:"type:jsonb;serializer:json" json:"images"`
	Category         string           `gorm:"size:100;index" json:"category"`
	Stock            int              `gorm:"not null;default:0" json:"stock"`
	Rating           float64          `gorm:"type:decimal(3,2);default:0" json:"rating"`
	ReviewCount      int              `gorm:"default:0" json:"review_count"`
	Tags             []string         `gorm:"type:jsonb;serializer:json" json:"tags"`
	Featured         bool             `gorm:"default:false;index" json:"featured"`
	SizeChartImage   string           `gorm:"size:255" json:"size_chart_image"`
	DescriptionImage string           `gorm:"size:255" json:"description_image"`
	Variants         []ProductVariant `json:"product_variants"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// ProductVariant is one size row of a product. Whenever at least one variant
// exists, the parent's Stock is the sum of variant stocks and is rewritten on
// every variant mutation.
type ProductVariant struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null" json:"product_id"`
	Size      string    `gorm:"size:60;not null" json:"size"`
	Stock     int       `gorm:"not null;default:0" json:"stock"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProductFilter struct {
	BrandID  *uuid.UUID
	Category string
	Query    string
	Featured *bool
	Sort     string
	Page     int
	PageSize int
}

type ProductRepo interface {
	List(ctx context.Context, f ProductFilter) ([]Product, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	Save(ctx context.Context, p *Product) error
	// Delete removes the product and its variants in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)

	ListVariants(ctx context.Context, productID uuid.UUID) ([]ProductVariant, error)
	FindVariant(ctx context.Context, variantID uuid.UUID) (*ProductVariant, error)
	// CreateVariant / SaveVariant / DeleteVariant persist the variant change and
	// the parent stock rollup in the same transaction.
	CreateVariant(ctx context.Context, v *ProductVariant) error
	SaveVariant(ctx context.Context, v *ProductVariant) error
	DeleteVariant(ctx context.Context, variantID uuid.UUID) error
	// RecomputeStock rewrites products.stock from the variant sum and returns
	// the new value. Idempotent.
	RecomputeStock(ctx context.Context, productID uuid.UUID) (int, error)
}
