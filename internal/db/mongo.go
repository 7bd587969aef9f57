// MongoDB connection bootstrap.
//
// Environment:
//   - MONGODB_URI (default: mongodb://localhost:27017)
//   - MONGODB_DATABASE (default: habitloop)
package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/habitloop/backend/internal/config"
)

type Mongo struct {
	client    *mongo.Client
	users     *mongo.Collection
	habits    *mongo.Collection
	habitLogs *mongo.Collection
	ideas     *mongo.Collection
	topics    *mongo.Collection
	dailyLogs *mongo.Collection
}

func NewMongo(ctx context.Context, cfg config.MongoConfig) (*Mongo, error) {
	if cfg.URI == "" {
		return nil, errors.New("mongo uri is empty")
	}

	cli, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := cli.Ping(pctx, nil); err != nil {
		_ = cli.Disconnect(ctx)
		return nil, err
	}

	database := cli.Database(cfg.Database)
	return &Mongo{
		client:    cli,
		users:     database.Collection("users"),
		habits:    database.Collection("habits"),
		habitLogs: database.Collection("habit_logs"),
		ideas:     database.Collection("ideas"),
		topics:    database.Collection("topics"),
		dailyLogs: database.Collection("daily_logs"),
	}, nil
}

// EnsureIndexes creates the unique indexes the upsert invariants rely
// on: one user per email, one habit log per (habit, day), one journal
// entry per (user, day).
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = m.habitLogs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "habitId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = m.dailyLogs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	for _, coll := range []*mongo.Collection{m.habits, m.ideas, m.topics} {
		if _, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "userId", Value: 1}},
		}); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func IsNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
