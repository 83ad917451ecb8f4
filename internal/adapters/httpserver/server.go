package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/Peace-Corp/modoo-shop-admin/internal/domain"
	"github.com/Peace-Corp/modoo-shop-admin/internal/usecase"
)

type Server struct {
	router   *chi.Mux
	validate *validator.Validate

	brands  *usecase.BrandUC
	catalog *usecase.CatalogUC
	orders  *usecase.OrderUC
	banners *usecase.BannerUC
	stats   *usecase.StatsUC

	lowStockVariant int
	lowStockProduct int
}

func New(brands *usecase.BrandUC, catalog *usecase.CatalogUC, orders *usecase.OrderUC,
	banners *usecase.BannerUC, stats *usecase.StatsUC, lowStockVariant, lowStockProduct int) http.Handler {
	s := &Server{
		router:          chi.NewRouter(),
		validate:        validator.New(),
		brands:          brands,
		catalog:         catalog,
		orders:          orders,
		banners:         banners,
		stats:           stats,
		lowStockVariant: lowStockVariant,
		lowStockProduct: lowStockProduct,
	}
	s.routes()
	return s.router
}

func (s *Server) routes() {
	s.router.Use(RequestID, Recovery, Metrics, Logging)

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	s.router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", s.handleDashboard)

		r.Route("/brands", func(r chi.Router) {
			r.Get("/", s.handleListBrands)
			r.Post("/", s.handleCreateBrand)
			r.Route("/{brandID}", func(r chi.Router) {
				r.Get("/", s.handleGetBrand)
				r.Put("/", s.handleUpdateBrand)
				r.Delete("/", s.handleDeleteBrand)
				r.Get("/can-delete", s.handleCanDeleteBrand)
				r.Route("/hero-banners", func(r chi.Router) {
					r.Get("/", s.handleListBrandBanners)
					r.Post("/", s.handleCreateBrandBanner)
					r.Put("/{bannerID}", s.handleUpdateBrandBanner)
					r.Delete("/{bannerID}", s.handleDeleteBrandBanner)
				})
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", s.handleListProducts)
			r.Post("/", s.handleCreateProduct)
			r.Route("/{productID}", func(r chi.Router) {
				r.Get("/", s.handleGetProduct)
				r.Put("/", s.handleUpdateProduct)
				r.Delete("/", s.handleDeleteProduct)
				r.Get("/variants", s.handleListVariants)
				r.Post("/variants", s.handleCreateVariant)
				r.Post("/stock/recompute", s.handleRecomputeStock)
			})
		})

		r.Route("/variants/{variantID}", func(r chi.Router) {
			r.Patch("/", s.handleUpdateVariant)
			r.Delete("/", s.handleDeleteVariant)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", s.handleListOrders)
			r.Get("/export", s.handleExportOrders)
			r.Route("/{orderID}", func(r chi.Router) {
				r.Get("/", s.handleGetOrder)
				r.Delete("/", s.handleDeleteOrder)
				r.Patch("/status", s.handleUpdateOrderStatus)
				r.Patch("/payment-status", s.handleUpdatePaymentStatus)
			})
		})

		r.Route("/hero-banners", func(r chi.Router) {
			r.Get("/", s.handleListHeroBanners)
			r.Post("/", s.handleCreateHeroBanner)
			r.Put("/{bannerID}", s.handleUpdateHeroBanner)
			r.Delete("/{bannerID}", s.handleDeleteHeroBanner)
		})
	})
}

// --- dashboard ---

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	var from, to *time.Time
	q := r.URL.Query()
	if ds := q.Get("from"); ds != "" {
		t, err := time.ParseInLocation(dateLayout, ds, time.Local)
		if err != nil {
			s.writeError(w, r, &domain.ValidationError{Field: "from", Msg: "must be YYYY-MM-DD"})
			return
		}
		from = &t
	}
	if ds := q.Get("to"); ds != "" {
		t, err := time.ParseInLocation(dateLayout, ds, time.Local)
		if err != nil {
			s.writeError(w, r, &domain.ValidationError{Field: "to", Msg: "must be YYYY-MM-DD"})
			return
		}
		to = &t
	}
	stats, err := s.stats.Dashboard(r.Context(), from, to)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// --- brands ---

func (s *Server) handleListBrands(w http.ResponseWriter, r *http.Request) {
	list, err := s.brands.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"brands": list})
}

func (s *Server) handleCreateBrand(w http.ResponseWriter, r *http.Request) {
	var req brandRequest
	if !s.decode(w, r, &req) {
		return
	}
	var b domain.Brand
	if err := req.apply(&b); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.brands.Create(r.Context(), &b); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (s *Server) handleGetBrand(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "brandID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	b, err := s.brands.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleUpdateBrand(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "brandID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req brandRequest
	if !s.decode(w, r, &req) {
		return
	}
	b, err := s.brands.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := req.apply(b); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.brands.Update(r.Context(), b); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleDeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "brandID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.brands.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCanDeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "brandID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	ok, products, err := s.brands.CanDelete(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"can_delete": ok, "products": products})
}

// --- products ---

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.ProductFilter{
		Category: q.Get("category"),
		Query:    q.Get("q"),
		Sort:     q.Get("sort"),
		Page:     atoiDefault(q.Get("page"), 1),
		PageSize: atoiDefault(q.Get("page_size"), 20),
	}
	if v := q.Get("brand_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			s.writeError(w, r, &domain.ValidationError{Field: "brand_id", Msg: "must be a uuid"})
			return
		}
		f.BrandID = &id
	}
	if v := q.Get("featured"); v != "" {
		featured := v == "true" || v == "1"
		f.Featured = &featured
	}
	list, total, err := s.catalog.List(r.Context(), f)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"products":  s.productViews(list),
		"total":     total,
		"page":      f.Page,
		"page_size": f.PageSize,
	})
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if !s.decode(w, r, &req) {
		return
	}
	p := domain.Product{
		BrandID:          uuid.MustParse(req.BrandID),
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		OriginalPrice:    req.OriginalPrice,
		Images:           req.Images,
		Category:         req.Category,
		Stock:            req.Stock,
		Tags:             req.Tags,
		Featured:         req.Featured,
		SizeChartImage:   req.SizeChartImage,
		DescriptionImage: req.DescriptionImage,
	}
	if err := s.catalog.Create(r.Context(), &p); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, s.productView(p))
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "productID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := s.catalog.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.productView(*p))
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "productID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req productRequest
	if !s.decode(w, r, &req) {
		return
	}
	p, err := s.catalog.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	p.BrandID = uuid.MustParse(req.BrandID)
	p.Name = req.Name
	p.Description = req.Description
	p.Price = req.Price
	p.OriginalPrice = req.OriginalPrice
	p.Images = req.Images
	p.Category = req.Category
	p.Tags = req.Tags
	p.Featured = req.Featured
	p.SizeChartImage = req.SizeChartImage
	p.DescriptionImage = req.DescriptionImage
	// manual stock applies only while no variants exist; once variant-tracked,
	// the rollup owns the column
	if len(p.Variants) == 0 {
		p.Stock = req.Stock
	}
	if err := s.catalog.Update(r.Context(), p); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.productView(*p))
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "productID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.catalog.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRecomputeStock(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "productID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	stock, err := s.catalog.RecomputeStock(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"stock": stock})
}

// --- variants ---

func (s *Server) handleListVariants(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "productID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	list, err := s.catalog.ListVariants(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"variants": s.variantViews(list)})
}

func (s *Server) handleCreateVariant(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "productID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req variantCreateRequest
	if !s.decode(w, r, &req) {
		return
	}
	v, err := s.catalog.CreateVariant(r.Context(), id, req.Size, req.Stock, req.SortOrder)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, s.variantView(*v))
}

func (s *Server) handleUpdateVariant(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "variantID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req variantUpdateRequest
	if !s.decode(w, r, &req) {
		return
	}
	v, err := s.catalog.UpdateVariant(r.Context(), id, usecase.VariantUpdate{
		Size:      req.Size,
		Stock:     req.Stock,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.variantView(*v))
}

func (s *Server) handleDeleteVariant(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "variantID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.catalog.DeleteVariant(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- orders ---

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.OrderFilter{
		Page:     atoiDefault(q.Get("page"), 1),
		PageSize: atoiDefault(q.Get("page_size"), 20),
	}
	if ds := q.Get("from"); ds != "" {
		t, err := time.ParseInLocation(dateLayout, ds, time.Local)
		if err != nil {
			s.writeError(w, r, &domain.ValidationError{Field: "from", Msg: "must be YYYY-MM-DD"})
			return
		}
		f.From = &t
	}
	if ds := q.Get("to"); ds != "" {
		t, err := time.ParseInLocation(dateLayout, ds, time.Local)
		if err != nil {
			s.writeError(w, r, &domain.ValidationError{Field: "to", Msg: "must be YYYY-MM-DD"})
			return
		}
		// inclusive calendar day
		t = t.AddDate(0, 0, 1)
		f.To = &t
	}
	if v := q.Get("status"); v != "" {
		st := domain.OrderStatus(v)
		f.Status = &st
	}
	if v := q.Get("payment_status"); v != "" {
		st := domain.PaymentStatus(v)
		f.PaymentStatus = &st
	}
	list, total, err := s.orders.List(r.Context(), f)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"orders":    list,
		"total":     total,
		"page":      f.Page,
		"page_size": f.PageSize,
	})
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "orderID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	o, err := s.orders.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "orderID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req orderStatusRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.orders.UpdateStatus(r.Context(), id, domain.OrderStatus(req.Status)); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

func (s *Server) handleUpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "orderID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req paymentStatusRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.orders.UpdatePaymentStatus(r.Context(), id, domain.PaymentStatus(req.PaymentStatus)); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"payment_status": req.PaymentStatus})
}

func (s *Server) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "orderID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.orders.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- hero banners ---

func (s *Server) handleListHeroBanners(w http.ResponseWriter, r *http.Request) {
	list, err := s.banners.ListHero(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"banners": list})
}

func (s *Server) handleCreateHeroBanner(w http.ResponseWriter, r *http.Request) {
	var req heroBannerRequest
	if !s.decode(w, r, &req) {
		return
	}
	b := domain.HeroBanner{
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		Link:         req.Link,
		Tags:         req.Tags,
		DisplayOrder: req.DisplayOrder,
		ImageLink:    req.ImageLink,
		IsActive:     req.IsActive == nil || *req.IsActive,
	}
	if err := s.banners.CreateHero(r.Context(), &b); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (s *Server) handleUpdateHeroBanner(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "bannerID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req heroBannerRequest
	if !s.decode(w, r, &req) {
		return
	}
	b := domain.HeroBanner{
		ID:           id,
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		Link:         req.Link,
		Tags:         req.Tags,
		DisplayOrder: req.DisplayOrder,
		ImageLink:    req.ImageLink,
		IsActive:     req.IsActive == nil || *req.IsActive,
	}
	if err := s.banners.UpdateHero(r.Context(), &b); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleDeleteHeroBanner(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "bannerID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.banners.DeleteHero(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- brand hero banners ---

func (s *Server) handleListBrandBanners(w http.ResponseWriter, r *http.Request) {
	brandID, err := parseID(r, "brandID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	list, err := s.banners.ListBrandHero(r.Context(), brandID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"banners": list})
}

func (s *Server) handleCreateBrandBanner(w http.ResponseWriter, r *http.Request) {
	brandID, err := parseID(r, "brandID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req heroBannerRequest
	if !s.decode(w, r, &req) {
		return
	}
	b := domain.BrandHeroBanner{
		BrandID:      brandID,
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		Link:         req.Link,
		Color:        req.Color,
		DisplayOrder: req.DisplayOrder,
		ImageLink:    req.ImageLink,
		IsActive:     req.IsActive == nil || *req.IsActive,
	}
	if err := s.banners.CreateBrandHero(r.Context(), &b); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (s *Server) handleUpdateBrandBanner(w http.ResponseWriter, r *http.Request) {
	brandID, err := parseID(r, "brandID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	id, err := parseID(r, "bannerID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req heroBannerRequest
	if !s.decode(w, r, &req) {
		return
	}
	b := domain.BrandHeroBanner{
		ID:           id,
		BrandID:      brandID,
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		Link:         req.Link,
		Color:        req.Color,
		DisplayOrder: req.DisplayOrder,
		ImageLink:    req.ImageLink,
		IsActive:     req.IsActive == nil || *req.IsActive,
	}
	if err := s.banners.UpdateBrandHero(r.Context(), &b); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleDeleteBrandBanner(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "bannerID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.banners.DeleteBrandHero(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- helpers ---

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, r, &domain.ValidationError{Msg: "invalid json body"})
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.writeError(w, r, &domain.ValidationError{Msg: err.Error()})
		return false
	}
	return true
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	var ce *domain.ConflictError
	switch {
	case errors.As(err, &ce):
		writeJSON(w, http.StatusConflict, map[string]any{"error": ce.Error(), "products": ce.Products})
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": ve.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "not found"})
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Str("request_id", requestIDFrom(r.Context())).Msg("store error")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func parseID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, &domain.ValidationError{Field: name, Msg: "must be a uuid"}
	}
	return id, nil
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
