package app

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/Peace-Corp/modoo-shop-admin/internal/adapters/httpserver"
	"github.com/Peace-Corp/modoo-shop-admin/internal/adapters/repo/postgres"
	"github.com/Peace-Corp/modoo-shop-admin/internal/config"
	"github.com/Peace-Corp/modoo-shop-admin/internal/domain"
	"github.com/Peace-Corp/modoo-shop-admin/internal/usecase"
)

type App struct {
	DB     *gorm.DB
	Config *config.Config

	BrandUC   *usecase.BrandUC
	CatalogUC *usecase.CatalogUC
	OrderUC   *usecase.OrderUC
	BannerUC  *usecase.BannerUC
	StatsUC   *usecase.StatsUC
}

func New(db *gorm.DB, cfg *config.Config) *App {
	brandRepo := postgres.NewBrandRepo(db)
	productRepo := postgres.NewProductRepo(db)
	orderRepo := postgres.NewOrderRepo(db)
	bannerRepo := postgres.NewBannerRepo(db)
	salesRepo := postgres.NewSalesRepo(db)

	return &App{
		DB:        db,
		Config:    cfg,
		BrandUC:   &usecase.BrandUC{Brands: brandRepo},
		CatalogUC: &usecase.CatalogUC{Products: productRepo},
		OrderUC:   &usecase.OrderUC{Orders: orderRepo},
		BannerUC:  &usecase.BannerUC{Banners: bannerRepo},
		StatsUC: &usecase.StatsUC{
			Orders:   orderRepo,
			Sales:    salesRepo,
			Products: productRepo,
			Brands:   brandRepo,
		},
	}
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.BrandUC, a.CatalogUC, a.OrderUC, a.BannerUC, a.StatsUC,
		a.Config.LowStockVariant, a.Config.LowStockProduct)
}

func (a *App) Migrate() error {
	if err := a.DB.AutoMigrate(
		&domain.Brand{}, &domain.Product{}, &domain.ProductVariant{},
		&domain.Order{}, &domain.OrderItem{},
		&domain.HeroBanner{}, &domain.BrandHeroBanner{}, &domain.SalesData{},
	); err != nil {
		return err
	}

	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_product_variants_product_sort ON product_variants (product_id, sort_order)").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at)").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_brand_hero_banners_brand ON brand_hero_banners (brand_id, display_order)").Error

	return nil
}
