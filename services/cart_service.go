package services

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"storefront/models"
	"storefront/repository"
)

// CartService defines the cart business logic. Every mutation is a single
// read-modify-write cycle against one document; there is no optimistic
// concurrency token, so concurrent writes for the same user can lose
// updates.
type CartService interface {
	GetOrCreate(ctx context.Context, userID string) (*models.Cart, *ServiceError)
	AddItem(ctx context.Context, userID, itemID string, qty int, price float64) (*models.Cart, *ServiceError)
	UpdateItem(ctx context.Context, userID, itemID string, qty int) (*models.Cart, *ServiceError)
	RemoveItem(ctx context.Context, userID, itemID string) (*models.Cart, *ServiceError)
	Clear(ctx context.Context, userID string) (*models.Cart, *ServiceError)
}

type cartServiceImpl struct {
	repo   repository.CartRepo
	logger *zap.Logger
}

func NewCartService(repo repository.CartRepo, logger *zap.Logger) CartService {
	return &cartServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

// GetOrCreate returns the user's cart, creating and persisting an empty one
// on first access.
func (s *cartServiceImpl) GetOrCreate(ctx context.Context, userID string) (*models.Cart, *ServiceError) {
	cart, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrCartNotFound) {
			s.logger.Error("Failed to fetch cart", zap.String("user_id", userID), zap.Error(err))
			return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error fetching cart", Err: err}
		}
		cart = &models.Cart{UserID: userID, Items: []models.CartItem{}}
		if err := s.repo.Save(ctx, cart); err != nil {
			s.logger.Error("Failed to create cart", zap.String("user_id", userID), zap.Error(err))
			return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error fetching cart", Err: err}
		}
	}
	return cart, nil
}

// AddItem merges by item id: an existing line gets its quantity incremented
// and keeps the price it was first added at; a new line is appended.
func (s *cartServiceImpl) AddItem(ctx context.Context, userID, itemID string, qty int, price float64) (*models.Cart, *ServiceError) {
	if userID == "" || itemID == "" || qty == 0 || price == 0 {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "UserId, itemId, qty, and price are required"}
	}

	cart, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrCartNotFound) {
			s.logger.Error("Failed to fetch cart", zap.String("user_id", userID), zap.Error(err))
			return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error adding to cart", Err: err}
		}
		cart = &models.Cart{UserID: userID, Items: []models.CartItem{}}
	}

	found := false
	for i, item := range cart.Items {
		if item.ItemID == itemID {
			cart.Items[i].Qty += qty
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, models.CartItem{ItemID: itemID, Qty: qty, Price: price})
	}

	if err := s.repo.Save(ctx, cart); err != nil {
		s.logger.Error("Failed to save cart", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error adding to cart", Err: err}
	}

	s.logger.Info("Item added to cart",
		zap.String("user_id", userID),
		zap.String("item_id", itemID),
		zap.Int("qty", qty),
	)
	return cart, nil
}

// UpdateItem sets an absolute quantity. A quantity of zero or below removes
// the line instead.
func (s *cartServiceImpl) UpdateItem(ctx context.Context, userID, itemID string, qty int) (*models.Cart, *ServiceError) {
	cart, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Cart not found"}
		}
		s.logger.Error("Failed to fetch cart", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error updating cart", Err: err}
	}

	idx := -1
	for i, item := range cart.Items {
		if item.ItemID == itemID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Item not in cart"}
	}

	if qty <= 0 {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	} else {
		cart.Items[idx].Qty = qty
	}

	if err := s.repo.Save(ctx, cart); err != nil {
		s.logger.Error("Failed to save cart", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error updating cart", Err: err}
	}
	return cart, nil
}

// RemoveItem filters out the line with the given item id. An absent item is
// a no-op, not an error.
func (s *cartServiceImpl) RemoveItem(ctx context.Context, userID, itemID string) (*models.Cart, *ServiceError) {
	cart, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Cart not found"}
		}
		s.logger.Error("Failed to fetch cart", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error removing from cart", Err: err}
	}

	newItems := make([]models.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ItemID != itemID {
			newItems = append(newItems, item)
		}
	}
	cart.Items = newItems

	if err := s.repo.Save(ctx, cart); err != nil {
		s.logger.Error("Failed to save cart", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error removing from cart", Err: err}
	}
	return cart, nil
}

// Clear empties the item list but keeps the cart document.
func (s *cartServiceImpl) Clear(ctx context.Context, userID string) (*models.Cart, *ServiceError) {
	cart, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Cart not found"}
		}
		s.logger.Error("Failed to fetch cart", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error clearing cart", Err: err}
	}

	cart.Items = []models.CartItem{}

	if err := s.repo.Save(ctx, cart); err != nil {
		s.logger.Error("Failed to save cart", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error clearing cart", Err: err}
	}

	s.logger.Info("Cart cleared", zap.String("user_id", userID))
	return cart, nil
}
