package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Brand struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string     `gorm:"size:140;not null" json:"name"`
	EngName          string     `gorm:"size:140" json:"eng_name"`
	Slug             string     `gorm:"uniqueIndex;size:140" json:"slug"`
	Logo             string     `gorm:"size:255" json:"logo"`
	Banner           string     `gorm:"size:255" json:"banner"`
	Description      string     `gorm:"type:text" json:"description"`
	Featured         bool       `gorm:"default:false" json:"featured"`
	OrderDetailImage string     `gorm:"size:255" json:"order_detail_image"`
	ValidPeriodStart *time.Time `json:"valid_period_start"`
	ValidPeriodEnd   *time.Time `json:"valid_period_end"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type BrandRepo interface {
	List(ctx context.Context) ([]Brand, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Brand, error)
	Save(ctx context.Context, b *Brand) error
	// CountProducts returns how many products currently reference the brand.
	CountProducts(ctx context.Context, brandID uuid.UUID) (int64, error)
	// Delete removes the brand only if it owns no products; the count and the
	// delete run in one transaction. Returns ConflictError when blocked.
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
