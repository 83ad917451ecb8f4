package httpserver

import (
	"time"

	"github.com/Peace-Corp/modoo-shop-admin/internal/domain"
)

const dateLayout = "2006-01-02"

type brandRequest struct {
	Name             string  `json:"name" validate:"required"`
	EngName          string  `json:"eng_name"`
	Slug             string  `json:"slug"`
	Logo             string  `json:"logo"`
	Banner           string  `json:"banner"`
	Description      string  `json:"description"`
	Featured         bool    `json:"featured"`
	OrderDetailImage string  `json:"order_detail_image"`
	ValidPeriodStart *string `json:"valid_period_start"`
	ValidPeriodEnd   *string `json:"valid_period_end"`
}

func (req *brandRequest) apply(b *domain.Brand) error {
	b.Name = req.Name
	b.EngName = req.EngName
	b.Slug = req.Slug
	b.Logo = req.Logo
	b.Banner = req.Banner
	b.Description = req.Description
	b.Featured = req.Featured
	b.OrderDetailImage = req.OrderDetailImage

	var err error
	if b.ValidPeriodStart, err = parseDatePtr(req.ValidPeriodStart); err != nil {
		return &domain.ValidationError{Field: "valid_period_start", Msg: "must be YYYY-MM-DD"}
	}
	if b.ValidPeriodEnd, err = parseDatePtr(req.ValidPeriodEnd); err != nil {
		return &domain.ValidationError{Field: "valid_period_end", Msg: "must be YYYY-MM-DD"}
	}
	return nil
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, *s, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type productRequest struct {
	BrandID          string   `json:"brand_id" validate:"required,uuid"`
	Name             string   `json:"name" validate:"required"`
	Description      string   `json:"description"`
	Price            int64    `json:"price" validate:"gte=0"`
	OriginalPrice    *int64   `json:"original_price"`
	Images           []string `json:"images"`
	Category         string   `json:"category"`
	Stock            int      `json:"stock" validate:"gte=0"`
	Tags             []string `json:"tags"`
	Featured         bool     `json:"featured"`
	SizeChartImage   string   `json:"size_chart_image"`
	DescriptionImage string   `json:"description_image"`
}

type variantCreateRequest struct {
	Size      string `json:"size" validate:"required"`
	Stock     int    `json:"stock" validate:"gte=0"`
	SortOrder int    `json:"sort_order"`
}

type variantUpdateRequest struct {
	Size      *string `json:"size"`
	Stock     *int    `json:"stock" validate:"omitempty,gte=0"`
	SortOrder *int    `json:"sort_order"`
}

type heroBannerRequest struct {
	Title        string   `json:"title" validate:"required"`
	Subtitle     string   `json:"subtitle"`
	Link         string   `json:"link"`
	Tags         []string `json:"tags"`
	Color        string   `json:"color"`
	DisplayOrder int      `json:"display_order"`
	ImageLink    string   `json:"image_link" validate:"required"`
	IsActive     *bool    `json:"is_active"`
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type paymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required"`
}

// productView decorates a product with the low-stock presentation flags; the
// thresholds come from config, they are not data invariants.
type productView struct {
	domain.Product
	LowStock   bool `json:"low_stock"`
	OutOfStock bool `json:"out_of_stock"`
}

type variantView struct {
	domain.ProductVariant
	LowStock   bool `json:"low_stock"`
	OutOfStock bool `json:"out_of_stock"`
}

func (s *Server) productView(p domain.Product) productView {
	return productView{
		Product:    p,
		LowStock:   p.Stock < s.lowStockProduct,
		OutOfStock: p.Stock == 0,
	}
}

func (s *Server) variantView(v domain.ProductVariant) variantView {
	return variantView{
		ProductVariant: v,
		LowStock:       v.Stock < s.lowStockVariant,
		OutOfStock:     v.Stock == 0,
	}
}

func (s *Server) productViews(list []domain.Product) []productView {
	out := make([]productView, 0, len(list))
	for _, p := range list {
		out = append(out, s.productView(p))
	}
	return out
}

func (s *Server) variantViews(list []domain.ProductVariant) []variantView {
	out := make([]variantView, 0, len(list))
	for _, v := range list {
		out = append(out, s.variantView(v))
	}
	return out
}
