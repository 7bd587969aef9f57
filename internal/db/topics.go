package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/habitloop/backend/internal/model"
)

func (m *Mongo) CreateTopic(ctx context.Context, topic *model.Topic) error {
	now := time.Now()
	topic.CreatedAt = now
	topic.UpdatedAt = now
	res, err := m.topics.InsertOne(ctx, topic)
	if err != nil {
		return err
	}
	topic.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (m *Mongo) ListTopics(ctx context.Context, userID primitive.ObjectID) ([]model.Topic, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := m.topics.Find(ctx, bson.M{"userId": userID, "archived": false}, opts)
	if err != nil {
		return nil, err
	}
	topics := []model.Topic{}
	if err := cur.All(ctx, &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

func (m *Mongo) GetTopic(ctx context.Context, id, userID primitive.ObjectID) (*model.Topic, error) {
	var topic model.Topic
	err := m.topics.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&topic)
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

// ArchiveTopic soft-deletes: archived topics disappear from listings
// but ideas keep their topic reference.
func (m *Mongo) ArchiveTopic(ctx context.Context, id, userID primitive.ObjectID) error {
	return m.topics.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "userId": userID},
		bson.M{"$set": bson.M{"archived": true, "updatedAt": time.Now()}},
	).Err()
}
