package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/habitloop/backend/internal/model"
)

func (m *Mongo) CreateIdea(ctx context.Context, idea *model.Idea) error {
	now := time.Now()
	idea.CreatedAt = now
	idea.UpdatedAt = now
	if idea.Tags == nil {
		idea.Tags = []string{}
	}
	res, err := m.ideas.InsertOne(ctx, idea)
	if err != nil {
		return err
	}
	idea.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (m *Mongo) ListIdeas(ctx context.Context, userID primitive.ObjectID, filter model.IdeaFilter) ([]model.Idea, error) {
	query := bson.M{"userId": userID}

	if filter.TopicID != "" {
		id, err := primitive.ObjectIDFromHex(filter.TopicID)
		if err != nil {
			return nil, err
		}
		query["topicId"] = id
	}
	if filter.HabitID != "" {
		id, err := primitive.ObjectIDFromHex(filter.HabitID)
		if err != nil {
			return nil, err
		}
		query["habitId"] = id
	}
	if len(filter.Tags) > 0 {
		query["tags"] = bson.M{"$in": filter.Tags}
	}
	if filter.Priority != "" {
		query["priority"] = filter.Priority
	}
	if filter.Search != "" {
		query["text"] = bson.M{"$regex": filter.Search, "$options": "i"}
	}
	if !filter.DateFrom.IsZero() || !filter.DateTo.IsZero() {
		created := bson.M{}
		if !filter.DateFrom.IsZero() {
			created["$gte"] = filter.DateFrom
		}
		if !filter.DateTo.IsZero() {
			created["$lte"] = filter.DateTo
		}
		query["createdAt"] = created
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := m.ideas.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	ideas := []model.Idea{}
	if err := cur.All(ctx, &ideas); err != nil {
		return nil, err
	}
	return ideas, nil
}

// UpdateIdea applies set/unset maps and returns the updated document.
func (m *Mongo) UpdateIdea(ctx context.Context, id, userID primitive.ObjectID, set, unset bson.M) (*model.Idea, error) {
	set["updatedAt"] = time.Now()
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var idea model.Idea
	err := m.ideas.FindOneAndUpdate(ctx, bson.M{"_id": id, "userId": userID}, update, opts).Decode(&idea)
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

func (m *Mongo) DeleteIdea(ctx context.Context, id, userID primitive.ObjectID) error {
	return m.ideas.FindOneAndDelete(ctx, bson.M{"_id": id, "userId": userID}).Err()
}
