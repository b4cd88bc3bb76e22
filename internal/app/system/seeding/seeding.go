// internal/app/system/seeding/seeding.go
package seeding

import (
	"context"
	"time"

	"github.com/dalemusser/lwandasite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SeedAll seeds sample data for the self-hosted backend if not already
// present.
func SeedAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	if err := seedStories(ctx, db, logger); err != nil {
		return err
	}
	return nil
}

// SampleStories are inserted into an empty stories collection so a fresh
// install has something to show.
func SampleStories(now time.Time) []models.Story {
	published := models.StoryStatusPublished
	tag := func(s string) *string { return &s }
	date := func(y int, m time.Month, d int) *models.Date {
		return models.NewDate(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	}
	created := models.NewDate(now)

	return []models.Story{
		{
			Title:     "Graduation Day at Lwanda",
			Content:   "Twelve of our university students completed their studies this year. Each of them joined the programme as a sponsored child, and today they return as mentors for the youth leaders coming after them.",
			StoryDate: date(2024, 11, 30),
			Tag:       tag("Education"),
			Status:    &published,
			CreatedAt: created,
		},
		{
			Title:     "Healthy Beginnings for Mothers and Babies",
			Content:   "Through the Child Survival programme, 28 mothers and their babies received prenatal care, nutrition support, and home visits from our social worker during the first year of life.",
			StoryDate: date(2024, 8, 15),
			Tag:       tag("Child Survival"),
			Status:    &published,
			CreatedAt: created,
		},
		{
			Title:     "Youth Leaders Serving the Community",
			Content:   "Fifteen youth leaders organised a clean-up day and a children's fun day in Lwanda, putting into practice the servant leadership they learn every week at the centre.",
			StoryDate: date(2024, 5, 4),
			Tag:       tag("Youth Development"),
			CreatedAt: created,
		},
	}
}

// seedStories inserts the sample stories when the collection is empty.
func seedStories(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	coll := db.Collection(models.StoriesTable)

	n, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.Error("failed to count stories", zap.Error(err))
		return err
	}
	if n > 0 {
		return nil
	}

	stories := SampleStories(time.Now())
	docs := make([]any, len(stories))
	for i := range stories {
		docs[i] = stories[i]
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		logger.Error("failed to seed stories", zap.Error(err))
		return err
	}
	logger.Info("seeded sample stories", zap.Int("count", len(docs)))
	return nil
}
