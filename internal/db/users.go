package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/habitloop/backend/internal/model"
)

func (m *Mongo) CreateUser(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	now := time.Now()
	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Theme:        "light",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	res, err := m.users.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (m *Mongo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := m.users.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *Mongo) GetUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var user model.User
	if err := m.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *Mongo) UpdateUserTheme(ctx context.Context, id primitive.ObjectID, theme string) error {
	_, err := m.users.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"theme": theme, "updatedAt": time.Now()},
	})
	return err
}
