package routes

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"storefront/controllers"
	"storefront/middleware"
)

// Register wires every API route. Cart routes and catalog writes sit behind
// the token guard; signup/login are rate limited per IP.
func Register(
	r *gin.Engine,
	jwtSecret []byte,
	authController *controllers.AuthController,
	productController *controllers.ProductController,
	feedbackController *controllers.FeedbackController,
	cartController *controllers.CartController,
) {
	api := r.Group("/api")

	auth := middleware.Auth(jwtSecret)
	loginLimiter := middleware.RateLimit(rate.Limit(1), 10)

	api.POST("/signup", loginLimiter, authController.Signup)
	api.POST("/login", loginLimiter, authController.Login)

	api.POST("/feedback", feedbackController.PostFeedback)
	api.GET("/feedback", feedbackController.GetAllFeedback)

	api.GET("/products", productController.GetProducts)
	api.GET("/products/:id", productController.GetProductByID)
	api.POST("/products", auth, productController.CreateProduct)
	api.PUT("/products/:id", auth, productController.UpdateProduct)
	api.DELETE("/products/:id", auth, productController.DeleteProduct)

	cart := api.Group("/cart")
	cart.Use(auth)
	{
		cart.GET("/:userId", cartController.GetCart)
		cart.POST("/add", cartController.AddItem)
		cart.PUT("/update", cartController.UpdateItem)
		cart.POST("/remove", cartController.RemoveItem)
		cart.DELETE("/clear/:userId", cartController.ClearCart)
	}
}
