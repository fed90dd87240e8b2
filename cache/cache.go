package cache

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"storefront/models"
)

// ProductCache is a read-through cache for the product catalog. Writes to
// the catalog invalidate it wholesale via Flush.
type ProductCache interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	SetAll(ctx context.Context, products []models.Product) error
	Get(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Set(ctx context.Context, product *models.Product) error
	Flush(ctx context.Context) error
}

var ErrCacheMiss = errors.New("cache miss")
