package usecase_test

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Peace-Corp/modoo-shop-admin/internal/domain"
)

// In-memory repos mirroring the transactional behavior of the Postgres
// adapters: every variant mutation rewrites the parent's stock total.

type fakeProductRepo struct {
	products map[uuid.UUID]*domain.Product
	variants map[uuid.UUID]*domain.ProductVariant
}

var _ domain.ProductRepo = (*fakeProductRepo)(nil)

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products: make(map[uuid.UUID]*domain.Product),
		variants: make(map[uuid.UUID]*domain.ProductVariant),
	}
}

func (f *fakeProductRepo) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int64, error) {
	var list []domain.Product
	for _, p := range f.products {
		if filter.BrandID != nil && p.BrandID != *filter.BrandID {
			continue
		}
		list = append(list, *p)
	}
	return list, int64(len(list)), nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) Save(ctx context.Context, p *domain.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.products[id]; !ok {
		return domain.ErrNotFound
	}
	for vid, v := range f.variants {
		if v.ProductID == id {
			delete(f.variants, vid)
		}
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

func (f *fakeProductRepo) ListVariants(ctx context.Context, productID uuid.UUID) ([]domain.ProductVariant, error) {
	var list []domain.ProductVariant
	for _, v := range f.variants {
		if v.ProductID == productID {
			list = append(list, *v)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].SortOrder < list[j].SortOrder })
	return list, nil
}

func (f *fakeProductRepo) FindVariant(ctx context.Context, variantID uuid.UUID) (*domain.ProductVariant, error) {
	v, ok := f.variants[variantID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (f *fakeProductRepo) CreateVariant(ctx context.Context, v *domain.ProductVariant) error {
	cp := *v
	f.variants[v.ID] = &cp
	f.rollup(v.ProductID)
	return nil
}

func (f *fakeProductRepo) SaveVariant(ctx context.Context, v *domain.ProductVariant) error {
	cp := *v
	f.variants[v.ID] = &cp
	f.rollup(v.ProductID)
	return nil
}

func (f *fakeProductRepo) DeleteVariant(ctx context.Context, variantID uuid.UUID) error {
	v, ok := f.variants[variantID]
	if !ok {
		return domain.ErrNotFound
	}
	delete(f.variants, variantID)
	f.rollup(v.ProductID)
	return nil
}

func (f *fakeProductRepo) RecomputeStock(ctx context.Context, productID uuid.UUID) (int, error) {
	if _, ok := f.products[productID]; !ok {
		return 0, domain.ErrNotFound
	}
	f.rollup(productID)
	return f.products[productID].Stock, nil
}

func (f *fakeProductRepo) rollup(productID uuid.UUID) {
	p, ok := f.products[productID]
	if !ok {
		return
	}
	sum := 0
	for _, v := range f.variants {
		if v.ProductID == productID {
			sum += v.Stock
		}
	}
	p.Stock = sum
}

type fakeBrandRepo struct {
	brands   map[uuid.UUID]*domain.Brand
	products *fakeProductRepo
}

var _ domain.BrandRepo = (*fakeBrandRepo)(nil)

func newFakeBrandRepo(products *fakeProductRepo) *fakeBrandRepo {
	return &fakeBrandRepo{brands: make(map[uuid.UUID]*domain.Brand), products: products}
}

func (f *fakeBrandRepo) List(ctx context.Context) ([]domain.Brand, error) {
	var list []domain.Brand
	for _, b := range f.brands {
		list = append(list, *b)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (f *fakeBrandRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Brand, error) {
	b, ok := f.brands[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBrandRepo) Save(ctx context.Context, b *domain.Brand) error {
	cp := *b
	f.brands[b.ID] = &cp
	return nil
}

func (f *fakeBrandRepo) CountProducts(ctx context.Context, brandID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range f.products.products {
		if p.BrandID == brandID {
			n++
		}
	}
	return n, nil
}

func (f *fakeBrandRepo) Delete(ctx context.Context, id uuid.UUID) error {
	n, _ := f.CountProducts(ctx, id)
	if n > 0 {
		return &domain.ConflictError{Products: n}
	}
	if _, ok := f.brands[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.brands, id)
	return nil
}

func (f *fakeBrandRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.brands)), nil
}

type fakeOrderRepo struct {
	orders map[uuid.UUID]*domain.Order
}

var _ domain.OrderRepo = (*fakeOrderRepo)(nil)

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*domain.Order)}
}

func (f *fakeOrderRepo) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int64, error) {
	var list []domain.Order
	for _, o := range f.orders {
		if filter.From != nil && o.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !o.CreatedAt.Before(*filter.To) {
			continue
		}
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		if filter.PaymentStatus != nil && o.PaymentStatus != *filter.PaymentStatus {
			continue
		}
		list = append(list, *o)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, int64(len(list)), nil
}

func (f *fakeOrderRepo) ListInRange(ctx context.Context, from, to time.Time) ([]domain.Order, error) {
	var list []domain.Order
	for _, o := range f.orders {
		if o.CreatedAt.Before(from) || !o.CreatedAt.Before(to) {
			continue
		}
		list = append(list, *o)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

func (f *fakeOrderRepo) Recent(ctx context.Context, from, to time.Time, limit int) ([]domain.Order, error) {
	list, err := f.ListInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error {
	o, ok := f.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}

func (f *fakeOrderRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus) error {
	o, ok := f.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.PaymentStatus = status
	return nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.orders[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.orders, id)
	return nil
}

type fakeBannerRepo struct {
	hero      map[uuid.UUID]*domain.HeroBanner
	brandHero map[uuid.UUID]*domain.BrandHeroBanner
}

var _ domain.BannerRepo = (*fakeBannerRepo)(nil)

func newFakeBannerRepo() *fakeBannerRepo {
	return &fakeBannerRepo{
		hero:      make(map[uuid.UUID]*domain.HeroBanner),
		brandHero: make(map[uuid.UUID]*domain.BrandHeroBanner),
	}
}

func (f *fakeBannerRepo) ListHero(ctx context.Context) ([]domain.HeroBanner, error) {
	var list []domain.HeroBanner
	for _, b := range f.hero {
		list = append(list, *b)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].DisplayOrder < list[j].DisplayOrder })
	return list, nil
}

func (f *fakeBannerRepo) FindHero(ctx context.Context, id uuid.UUID) (*domain.HeroBanner, error) {
	b, ok := f.hero[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBannerRepo) SaveHero(ctx context.Context, b *domain.HeroBanner) error {
	cp := *b
	f.hero[b.ID] = &cp
	return nil
}

func (f *fakeBannerRepo) DeleteHero(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.hero[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.hero, id)
	return nil
}

func (f *fakeBannerRepo) ListBrandHero(ctx context.Context, brandID uuid.UUID) ([]domain.BrandHeroBanner, error) {
	var list []domain.BrandHeroBanner
	for _, b := range f.brandHero {
		if b.BrandID == brandID {
			list = append(list, *b)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].DisplayOrder < list[j].DisplayOrder })
	return list, nil
}

func (f *fakeBannerRepo) FindBrandHero(ctx context.Context, id uuid.UUID) (*domain.BrandHeroBanner, error) {
	b, ok := f.brandHero[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBannerRepo) SaveBrandHero(ctx context.Context, b *domain.BrandHeroBanner) error {
	cp := *b
	f.brandHero[b.ID] = &cp
	return nil
}

func (f *fakeBannerRepo) DeleteBrandHero(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.brandHero[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.brandHero, id)
	return nil
}

type fakeSalesRepo struct {
	rows []domain.SalesData
}

var _ domain.SalesRepo = (*fakeSalesRepo)(nil)

func (f *fakeSalesRepo) Latest(ctx context.Context, limit int) ([]domain.SalesData, error) {
	rows := append([]domain.SalesData(nil), f.rows...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.After(rows[j].Date) })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}
