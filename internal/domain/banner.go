package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// HeroBanner is the storefront-wide promotional slot.
type HeroBanner struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string    `gorm:"size:140;not null" json:"title"`
	Subtitle     string    `gorm:"size:255" json:"subtitle"`
	Link         string    `gorm:"size:255" json:"link"`
	Tags         []string  `gorm:"type:jsonb;serializer:json" json:"tags"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	ImageLink    string    `gorm:"size:255;not null" json:"image_link"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BrandHeroBanner is the brand-page variant of the hero slot.
type BrandHeroBanner struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BrandID      uuid.UUID `gorm:"type:uuid;index;not null" json:"brand_id"`
	Title        string    `gorm:"size:140;not null" json:"title"`
	Subtitle     string    `gorm:"size:255" json:"subtitle"`
	Link         string    `gorm:"size:255" json:"link"`
	Color        string    `gorm:"size:20" json:"color"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	ImageLink    string    `gorm:"size:255;not null" json:"image_link"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type BannerRepo interface {
	ListHero(ctx context.Context) ([]HeroBanner, error)
	FindHero(ctx context.Context, id uuid.UUID) (*HeroBanner, error)
	SaveHero(ctx context.Context, b *HeroBanner) error
	DeleteHero(ctx context.Context, id uuid.UUID) error

	ListBrandHero(ctx context.Context, brandID uuid.UUID) ([]BrandHeroBanner, error)
	FindBrandHero(ctx context.Context, id uuid.UUID) (*BrandHeroBanner, error)
	SaveBrandHero(ctx context.Context, b *BrandHeroBanner) error
	DeleteBrandHero(ctx context.Context, id uuid.UUID) error
}
