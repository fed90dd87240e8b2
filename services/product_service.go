package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/cache"
	"storefront/models"
	"storefront/repository"
)

// CreateProductRequest carries a new catalog entry. Name, price, and
// category are mandatory; the rest fall back to defaults.
type CreateProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	FullName string  `json:"fullName"`
	Price    float64 `json:"price" binding:"required"`
	Image    string  `json:"image"`
	Category string  `json:"category" binding:"required"`
	Badge    string  `json:"badge"`
	Weight   string  `json:"weight"`
	Stock    int     `json:"stock"`
}

// UpdateProductRequest carries a partial update; nil fields are left alone.
type UpdateProductRequest struct {
	Name     *string  `json:"name"`
	FullName *string  `json:"fullName"`
	Price    *float64 `json:"price"`
	Image    *string  `json:"image"`
	Category *string  `json:"category"`
	Badge    *string  `json:"badge"`
	Weight   *string  `json:"weight"`
	Stock    *int     `json:"stock"`
}

// ProductService is the catalog business logic with a read-through cache in
// front of the repository.
type ProductService interface {
	GetAll(ctx context.Context) ([]models.Product, *ServiceError)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, *ServiceError)
	Create(ctx context.Context, req *CreateProductRequest) (*models.Product, *ServiceError)
	Update(ctx context.Context, id uuid.UUID, req *UpdateProductRequest) (*models.Product, *ServiceError)
	Delete(ctx context.Context, id uuid.UUID) (*models.Product, *ServiceError)
}

type productServiceImpl struct {
	repo   repository.ProductRepo
	cache  cache.ProductCache
	logger *zap.Logger
}

func NewProductService(repo repository.ProductRepo, cache cache.ProductCache, logger *zap.Logger) ProductService {
	return &productServiceImpl{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (s *productServiceImpl) GetAll(ctx context.Context) ([]models.Product, *ServiceError) {
	if products, err := s.cache.GetAll(ctx); err == nil {
		return products, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("Product cache read failed", zap.Error(err))
	}

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch products", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error fetching products", Err: err}
	}

	if err := s.cache.SetAll(ctx, products); err != nil {
		s.logger.Warn("Product cache write failed", zap.Error(err))
	}
	return products, nil
}

func (s *productServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, *ServiceError) {
	if product, err := s.cache.Get(ctx, id); err == nil {
		return product, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("Product cache read failed", zap.Error(err))
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Product not found"}
		}
		s.logger.Error("Failed to fetch product", zap.String("id", id.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error fetching product", Err: err}
	}

	if err := s.cache.Set(ctx, product); err != nil {
		s.logger.Warn("Product cache write failed", zap.Error(err))
	}
	return product, nil
}

func (s *productServiceImpl) Create(ctx context.Context, req *CreateProductRequest) (*models.Product, *ServiceError) {
	product := &models.Product{
		ID:       uuid.New(),
		Name:     req.Name,
		FullName: req.FullName,
		Price:    req.Price,
		Image:    req.Image,
		Category: req.Category,
		Badge:    req.Badge,
		Weight:   req.Weight,
		Stock:    req.Stock,
	}
	if product.FullName == "" {
		product.FullName = product.Name
	}
	if product.Image == "" {
		product.Image = "/images/default.png"
	}
	if product.Weight == "" {
		product.Weight = "N/A"
	}

	if err := s.repo.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error creating product", Err: err}
	}

	s.invalidate(ctx)
	s.logger.Info("Product created", zap.String("id", product.ID.String()), zap.String("name", product.Name))
	return product, nil
}

func (s *productServiceImpl) Update(ctx context.Context, id uuid.UUID, req *UpdateProductRequest) (*models.Product, *ServiceError) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Badge != nil {
		updates["badge"] = *req.Badge
	}
	if req.Weight != nil {
		updates["weight"] = *req.Weight
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Product not found"}
			}
			s.logger.Error("Failed to update product", zap.String("id", id.String()), zap.Error(err))
			return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error updating product", Err: err}
		}
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Product not found"}
		}
		s.logger.Error("Failed to fetch product", zap.String("id", id.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error updating product", Err: err}
	}

	s.invalidate(ctx)
	return product, nil
}

func (s *productServiceImpl) Delete(ctx context.Context, id uuid.UUID) (*models.Product, *ServiceError) {
	product, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Product not found"}
		}
		s.logger.Error("Failed to delete product", zap.String("id", id.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error deleting product", Err: err}
	}

	s.invalidate(ctx)
	s.logger.Info("Product deleted", zap.String("id", id.String()))
	return product, nil
}

func (s *productServiceImpl) invalidate(ctx context.Context) {
	if err := s.cache.Flush(ctx); err != nil {
		s.logger.Warn("Product cache flush failed", zap.Error(err))
	}
}
