package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/models"
	"storefront/repository"
)

// FeedbackRequest carries a contact-form submission.
type FeedbackRequest struct {
	Firstname string `json:"firstname" binding:"required"`
	Lastname  string `json:"lastname" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Feedback  string `json:"feedback" binding:"required"`
}

type FeedbackService interface {
	Submit(ctx context.Context, req *FeedbackRequest) (*models.Feedback, *ServiceError)
	List(ctx context.Context) ([]models.Feedback, *ServiceError)
}

type feedbackServiceImpl struct {
	repo   repository.FeedbackRepo
	logger *zap.Logger
}

func NewFeedbackService(repo repository.FeedbackRepo, logger *zap.Logger) FeedbackService {
	return &feedbackServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *feedbackServiceImpl) Submit(ctx context.Context, req *FeedbackRequest) (*models.Feedback, *ServiceError) {
	fb := &models.Feedback{
		ID:        uuid.New(),
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Feedback:  req.Feedback,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, fb); err != nil {
		s.logger.Error("Failed to store feedback", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error submitting feedback", Err: err}
	}

	s.logger.Info("Feedback submitted", zap.String("id", fb.ID.String()))
	return fb, nil
}

func (s *feedbackServiceImpl) List(ctx context.Context) ([]models.Feedback, *ServiceError) {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch feedback", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error fetching feedback", Err: err}
	}
	return entries, nil
}
