package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ============================================================================
// Habit (tracked routine)
// ============================================================================

type Habit struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"userId" json:"-"`
	Name           string             `bson:"name" json:"name"`
	Category       string             `bson:"category" json:"category"`   // health, learning, business, personal, custom
	Frequency      string             `bson:"frequency" json:"frequency"` // daily, weekly, custom
	Priority       string             `bson:"priority" json:"priority"`   // low, medium, high
	ReminderTime   string             `bson:"reminderTime,omitempty" json:"reminderTime,omitempty"`
	IdeaGenerating bool               `bson:"ideaGenerating" json:"ideaGenerating"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CreateHabitRequest struct {
	Name           string `json:"name" binding:"required"`
	Category       string `json:"category" binding:"required,oneof=health learning business personal custom"`
	Frequency      string `json:"frequency" binding:"required,oneof=daily weekly custom"`
	Priority       string `json:"priority" binding:"required,oneof=low medium high"`
	ReminderTime   string `json:"reminderTime"`
	IdeaGenerating bool   `json:"ideaGenerating"`
}

// HabitWithStatus decorates a habit with today's log status for the
// dashboard. TodayStatus is empty when today has no log yet.
type HabitWithStatus struct {
	Habit       `bson:",inline"`
	TodayStatus string `json:"todayStatus,omitempty"`
}

// ============================================================================
// HabitLog (one completion record per habit per day)
// ============================================================================

type HabitLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	HabitID   primitive.ObjectID `bson:"habitId" json:"habitId"`
	UserID    primitive.ObjectID `bson:"userId" json:"-"`
	Date      time.Time          `bson:"date" json:"date"`
	Status    string             `bson:"status" json:"status"` // done, skipped
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type LogHabitRequest struct {
	Status string `json:"status" binding:"required,oneof=done skipped"`
	// Calendar day in 2006-01-02 form; today when empty.
	Date string `json:"date"`
}

type StreakResponse struct {
	HabitID string `json:"habitId"`
	Streak  int    `json:"streak"`
}

type IdeaPromptResponse struct {
	HabitID string `json:"habitId"`
	Prompt  string `json:"prompt"`
}
