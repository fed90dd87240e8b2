package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/services"
)

// AddItemRequest is the body for POST /api/cart/add. The binding tags
// reject missing and zero values, so qty and price are always non-zero by
// the time the service sees them.
type AddItemRequest struct {
	UserID string  `json:"userId" binding:"required"`
	ItemID string  `json:"itemId" binding:"required"`
	Qty    int     `json:"qty" binding:"required"`
	Price  float64 `json:"price" binding:"required"`
}

// UpdateItemRequest is the body for PUT /api/cart/update. Qty carries no
// required tag: zero and negative values are removal requests.
type UpdateItemRequest struct {
	UserID string `json:"userId" binding:"required"`
	ItemID string `json:"itemId" binding:"required"`
	Qty    int    `json:"qty"`
}

// RemoveItemRequest is the body for POST /api/cart/remove.
type RemoveItemRequest struct {
	UserID string `json:"userId" binding:"required"`
	ItemID string `json:"itemId" binding:"required"`
}

type CartController struct {
	svc services.CartService
}

func NewCartController(svc services.CartService) *CartController {
	return &CartController{svc: svc}
}

// GetCart returns the user's cart, creating an empty one on first access.
func (cc *CartController) GetCart(c *gin.Context) {
	userID := c.Param("userId")

	cart, svcErr := cc.svc.GetOrCreate(c.Request.Context(), userID)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"cart":    cart,
	})
}

// AddItem merges an item into the cart by item id.
func (cc *CartController) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "UserId, itemId, qty, and price are required",
		})
		return
	}

	cart, svcErr := cc.svc.AddItem(c.Request.Context(), req.UserID, req.ItemID, req.Qty, req.Price)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Item added to cart",
		"cart":    cart,
	})
}

// UpdateItem sets an absolute quantity, removing the item when qty <= 0.
func (cc *CartController) UpdateItem(c *gin.Context) {
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "UserId and itemId are required",
		})
		return
	}

	cart, svcErr := cc.svc.UpdateItem(c.Request.Context(), req.UserID, req.ItemID, req.Qty)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart updated",
		"cart":    cart,
	})
}

// RemoveItem filters the item out of the cart.
func (cc *CartController) RemoveItem(c *gin.Context) {
	var req RemoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "UserId and itemId are required",
		})
		return
	}

	cart, svcErr := cc.svc.RemoveItem(c.Request.Context(), req.UserID, req.ItemID)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Item removed from cart",
		"cart":    cart,
	})
}

// ClearCart empties the cart but keeps the document.
func (cc *CartController) ClearCart(c *gin.Context) {
	userID := c.Param("userId")

	cart, svcErr := cc.svc.Clear(c.Request.Context(), userID)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart cleared",
		"cart":    cart,
	})
}
