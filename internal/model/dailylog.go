package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DailyLog is one free-form journal entry per user per day.
type DailyLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"-"`
	Date      time.Time          `bson:"date" json:"date"`
	Notes     string             `bson:"notes" json:"notes"`
	Mood      string             `bson:"mood,omitempty" json:"mood,omitempty"` // happy, neutral, sad, anxious, excited
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type UpsertDailyLogRequest struct {
	// Calendar day in 2006-01-02 form; today when empty.
	Date  string `json:"date"`
	Notes string `json:"notes"`
	Mood  string `json:"mood" binding:"omitempty,oneof=happy neutral sad anxious excited"`
}
