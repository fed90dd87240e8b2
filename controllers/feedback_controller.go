package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/services"
)

type FeedbackController struct {
	svc services.FeedbackService
}

func NewFeedbackController(svc services.FeedbackService) *FeedbackController {
	return &FeedbackController{svc: svc}
}

// PostFeedback stores a contact-form submission.
func (fc *FeedbackController) PostFeedback(c *gin.Context) {
	var req services.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "All fields are required",
		})
		return
	}

	fb, svcErr := fc.svc.Submit(c.Request.Context(), &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Feedback submitted successfully",
		"feedback": fb,
	})
}

// GetAllFeedback lists every submission, for admin use.
func (fc *FeedbackController) GetAllFeedback(c *gin.Context) {
	entries, svcErr := fc.svc.List(c.Request.Context())
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"count":    len(entries),
		"feedback": entries,
	})
}
