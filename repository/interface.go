package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"storefront/models"
)

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
)

// CartRepo persists one cart document per user.
type CartRepo interface {
	FindByUserID(ctx context.Context, userID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	EnsureIndexes(ctx context.Context) error
}

// UserRepo persists registered accounts.
type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	EnsureIndexes(ctx context.Context) error
}

// ProductRepo persists catalog entries.
type ProductRepo interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// FeedbackRepo persists contact-form submissions.
type FeedbackRepo interface {
	Create(ctx context.Context, fb *models.Feedback) error
	FindAll(ctx context.Context) ([]models.Feedback, error)
}
