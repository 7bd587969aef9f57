package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/habitloop/backend/internal/model"
)

// UpsertHabitLog writes the day's log for a habit. The (habitId, date)
// unique index guarantees at most one entry per day; a second write for
// the same day overwrites the first one's status.
func (m *Mongo) UpsertHabitLog(ctx context.Context, habitID, userID primitive.ObjectID, date time.Time, status string) (*model.HabitLog, error) {
	filter := bson.M{"habitId": habitID, "userId": userID, "date": date}
	update := bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now(),
		},
		"$setOnInsert": bson.M{
			"habitId":   habitID,
			"userId":    userID,
			"date":      date,
			"createdAt": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var log model.HabitLog
	if err := m.habitLogs.FindOneAndUpdate(ctx, filter, update, opts).Decode(&log); err != nil {
		return nil, err
	}
	return &log, nil
}

func (m *Mongo) ListHabitLogs(ctx context.Context, userID primitive.ObjectID, habitID *primitive.ObjectID) ([]model.HabitLog, error) {
	filter := bson.M{"userId": userID}
	if habitID != nil {
		filter["habitId"] = *habitID
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := m.habitLogs.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	logs := []model.HabitLog{}
	if err := cur.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// ListDoneLogs fetches the habit's "done" entries newest first, capped
// at limit. The streak computation never looks further back than that.
func (m *Mongo) ListDoneLogs(ctx context.Context, habitID, userID primitive.ObjectID, limit int64) ([]model.HabitLog, error) {
	filter := bson.M{"habitId": habitID, "userId": userID, "status": "done"}
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(limit)
	cur, err := m.habitLogs.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	logs := []model.HabitLog{}
	if err := cur.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (m *Mongo) ListLogsForDate(ctx context.Context, userID primitive.ObjectID, date time.Time) ([]model.HabitLog, error) {
	cur, err := m.habitLogs.Find(ctx, bson.M{"userId": userID, "date": date})
	if err != nil {
		return nil, err
	}
	logs := []model.HabitLog{}
	if err := cur.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
