package controllers

import (
	"github.com/gin-gonic/gin"

	"storefront/services"
)

// respondError writes the shared failure envelope. Underlying error detail
// is only attached when the service recorded one (5xx paths).
func respondError(c *gin.Context, svcErr *services.ServiceError) {
	body := gin.H{
		"success": false,
		"message": svcErr.Message,
	}
	if svcErr.Err != nil {
		body["error"] = svcErr.Err.Error()
	}
	c.JSON(svcErr.StatusCode, body)
}
