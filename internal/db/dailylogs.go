package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/habitloop/backend/internal/model"
)

// UpsertDailyLog writes the day's journal entry; the (userId, date)
// unique index keeps it to one entry per day.
func (m *Mongo) UpsertDailyLog(ctx context.Context, userID primitive.ObjectID, date time.Time, notes, mood string) (*model.DailyLog, error) {
	set := bson.M{
		"notes":     notes,
		"updatedAt": time.Now(),
	}
	if mood != "" {
		set["mood"] = mood
	}
	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"userId":    userID,
			"date":      date,
			"createdAt": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var log model.DailyLog
	filter := bson.M{"userId": userID, "date": date}
	if err := m.dailyLogs.FindOneAndUpdate(ctx, filter, update, opts).Decode(&log); err != nil {
		return nil, err
	}
	return &log, nil
}

func (m *Mongo) GetDailyLog(ctx context.Context, userID primitive.ObjectID, date time.Time) (*model.DailyLog, error) {
	var log model.DailyLog
	err := m.dailyLogs.FindOne(ctx, bson.M{"userId": userID, "date": date}).Decode(&log)
	if err != nil {
		return nil, err
	}
	return &log, nil
}
