package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/models"
)

type FeedbackRepository struct {
	collection *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) *FeedbackRepository {
	return &FeedbackRepository{
		collection: db.Collection("feedback"),
	}
}

func (r *FeedbackRepository) Create(ctx context.Context, fb *models.Feedback) error {
	if _, err := r.collection.InsertOne(ctx, fb); err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

func (r *FeedbackRepository) FindAll(ctx context.Context) ([]models.Feedback, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find feedback: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.Feedback
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode feedback: %w", err)
	}
	return entries, nil
}
