package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/habitloop/backend/internal/model"
)

func (m *Mongo) CreateHabit(ctx context.Context, habit *model.Habit) error {
	now := time.Now()
	habit.CreatedAt = now
	habit.UpdatedAt = now
	res, err := m.habits.InsertOne(ctx, habit)
	if err != nil {
		return err
	}
	habit.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (m *Mongo) ListHabits(ctx context.Context, userID primitive.ObjectID) ([]model.Habit, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := m.habits.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	habits := []model.Habit{}
	if err := cur.All(ctx, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

func (m *Mongo) GetHabit(ctx context.Context, id, userID primitive.ObjectID) (*model.Habit, error) {
	var habit model.Habit
	err := m.habits.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&habit)
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

// DeleteHabit removes the habit and all of its logs, and detaches (but
// keeps) any ideas referencing it. Returns mongo.ErrNoDocuments when
// the habit does not exist or belongs to another user.
func (m *Mongo) DeleteHabit(ctx context.Context, id, userID primitive.ObjectID) error {
	err := m.habits.FindOneAndDelete(ctx, bson.M{"_id": id, "userId": userID}).Err()
	if err != nil {
		return err
	}

	if _, err := m.habitLogs.DeleteMany(ctx, bson.M{"habitId": id, "userId": userID}); err != nil {
		return err
	}

	_, err = m.ideas.UpdateMany(ctx,
		bson.M{"habitId": id, "userId": userID},
		bson.M{"$unset": bson.M{"habitId": 1}},
	)
	return err
}
