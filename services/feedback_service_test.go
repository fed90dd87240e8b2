package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"storefront/models"
	"storefront/services"
)

type mockFeedbackRepo struct {
	entries []models.Feedback
}

func (m *mockFeedbackRepo) Create(_ context.Context, fb *models.Feedback) error {
	m.entries = append(m.entries, *fb)
	return nil
}

func (m *mockFeedbackRepo) FindAll(_ context.Context) ([]models.Feedback, error) {
	return m.entries, nil
}

func TestSubmitFeedback_StoresAndStamps(t *testing.T) {
	repo := &mockFeedbackRepo{}
	svc := services.NewFeedbackService(repo, zap.NewNop())

	fb, svcErr := svc.Submit(context.Background(), &services.FeedbackRequest{
		Firstname: "Jane",
		Lastname:  "Doe",
		Email:     "jane@example.com",
		Feedback:  "Great store",
	})
	assert.Nil(t, svcErr)
	assert.NotZero(t, fb.ID)
	assert.False(t, fb.CreatedAt.IsZero())
	assert.Len(t, repo.entries, 1)

	all, svcErr := svc.List(context.Background())
	assert.Nil(t, svcErr)
	assert.Len(t, all, 1)
	assert.Equal(t, "jane@example.com", all[0].Email)
}
