package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"storefront/cache"
	"storefront/models"
	"storefront/repository"
	"storefront/services"
)

// --- Mock repository ---

type mockProductRepo struct {
	products   map[uuid.UUID]*models.Product
	order      []uuid.UUID
	findAllHit int
	lastUpdate map[string]interface{}
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: make(map[uuid.UUID]*models.Product)}
}

func (m *mockProductRepo) FindAll(_ context.Context) ([]models.Product, error) {
	m.findAllHit++
	out := make([]models.Product, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, *m.products[id])
	}
	return out, nil
}

func (m *mockProductRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockProductRepo) Create(_ context.Context, product *models.Product) error {
	cp := *product
	m.products[product.ID] = &cp
	m.order = append(m.order, product.ID)
	return nil
}

func (m *mockProductRepo) Update(_ context.Context, id uuid.UUID, updates map[string]interface{}) error {
	p, ok := m.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	m.lastUpdate = updates
	if v, ok := updates["price"]; ok {
		p.Price = v.(float64)
	}
	if v, ok := updates["name"]; ok {
		p.Name = v.(string)
	}
	return nil
}

func (m *mockProductRepo) Delete(_ context.Context, id uuid.UUID) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	delete(m.products, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return p, nil
}

// --- Fake cache ---

type fakeProductCache struct {
	all     []models.Product
	allSet  bool
	byID    map[uuid.UUID]*models.Product
	flushes int
}

func newFakeCache() *fakeProductCache {
	return &fakeProductCache{byID: make(map[uuid.UUID]*models.Product)}
}

func (f *fakeProductCache) GetAll(_ context.Context) ([]models.Product, error) {
	if !f.allSet {
		return nil, cache.ErrCacheMiss
	}
	return f.all, nil
}

func (f *fakeProductCache) SetAll(_ context.Context, products []models.Product) error {
	f.all = products
	f.allSet = true
	return nil
}

func (f *fakeProductCache) Get(_ context.Context, id uuid.UUID) (*models.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return p, nil
}

func (f *fakeProductCache) Set(_ context.Context, product *models.Product) error {
	f.byID[product.ID] = product
	return nil
}

func (f *fakeProductCache) Flush(_ context.Context) error {
	f.all = nil
	f.allSet = false
	f.byID = make(map[uuid.UUID]*models.Product)
	f.flushes++
	return nil
}

func newTestProductService(repo repository.ProductRepo, c cache.ProductCache) services.ProductService {
	return services.NewProductService(repo, c, zap.NewNop())
}

// --- Tests ---

func TestCreateProduct_AppliesDefaults(t *testing.T) {
	svc := newTestProductService(newMockProductRepo(), newFakeCache())

	product, svcErr := svc.Create(context.Background(), &services.CreateProductRequest{
		Name:     "Rice",
		Price:    120,
		Category: "grains",
	})
	assert.Nil(t, svcErr)
	assert.Equal(t, "Rice", product.FullName)
	assert.Equal(t, "/images/default.png", product.Image)
	assert.Equal(t, "N/A", product.Weight)
	assert.Equal(t, 0, product.Stock)
}

func TestGetAll_ServesFromCacheAfterFirstRead(t *testing.T) {
	repo := newMockProductRepo()
	c := newFakeCache()
	svc := newTestProductService(repo, c)

	_, _ = svc.Create(context.Background(), &services.CreateProductRequest{Name: "Rice", Price: 120, Category: "grains"})

	_, svcErr := svc.GetAll(context.Background())
	assert.Nil(t, svcErr)
	_, svcErr = svc.GetAll(context.Background())
	assert.Nil(t, svcErr)

	assert.Equal(t, 1, repo.findAllHit)
}

func TestWritesInvalidateCache(t *testing.T) {
	repo := newMockProductRepo()
	c := newFakeCache()
	svc := newTestProductService(repo, c)

	product, _ := svc.Create(context.Background(), &services.CreateProductRequest{Name: "Rice", Price: 120, Category: "grains"})
	_, _ = svc.GetAll(context.Background())
	assert.True(t, c.allSet)

	newPrice := 99.0
	_, svcErr := svc.Update(context.Background(), product.ID, &services.UpdateProductRequest{Price: &newPrice})
	assert.Nil(t, svcErr)
	assert.False(t, c.allSet)

	products, svcErr := svc.GetAll(context.Background())
	assert.Nil(t, svcErr)
	assert.Equal(t, 99.0, products[0].Price)
}

func TestUpdateProduct_OnlySuppliedFields(t *testing.T) {
	repo := newMockProductRepo()
	svc := newTestProductService(repo, newFakeCache())

	product, _ := svc.Create(context.Background(), &services.CreateProductRequest{Name: "Rice", Price: 120, Category: "grains"})

	newPrice := 99.0
	updated, svcErr := svc.Update(context.Background(), product.ID, &services.UpdateProductRequest{Price: &newPrice})
	assert.Nil(t, svcErr)
	assert.Equal(t, 99.0, updated.Price)
	assert.Equal(t, "Rice", updated.Name)
	assert.Len(t, repo.lastUpdate, 1)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestProductService(newMockProductRepo(), newFakeCache())

	_, svcErr := svc.GetByID(context.Background(), uuid.New())
	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
	assert.Equal(t, "Product not found", svcErr.Message)
}

func TestDeleteProduct_ReturnsDeletedDocument(t *testing.T) {
	repo := newMockProductRepo()
	svc := newTestProductService(repo, newFakeCache())

	product, _ := svc.Create(context.Background(), &services.CreateProductRequest{Name: "Rice", Price: 120, Category: "grains"})

	deleted, svcErr := svc.Delete(context.Background(), product.ID)
	assert.Nil(t, svcErr)
	assert.Equal(t, product.ID, deleted.ID)

	_, svcErr = svc.Delete(context.Background(), product.ID)
	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}
