package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Idea struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID  `bson:"userId" json:"-"`
	TopicID   *primitive.ObjectID `bson:"topicId,omitempty" json:"topicId,omitempty"`
	HabitID   *primitive.ObjectID `bson:"habitId,omitempty" json:"habitId,omitempty"`
	Text      string              `bson:"text" json:"text"`
	Tags      []string            `bson:"tags" json:"tags"`
	Priority  string              `bson:"priority" json:"priority"` // normal, important
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt" json:"updatedAt"`
}

type CreateIdeaRequest struct {
	Text     string   `json:"text" binding:"required"`
	TopicID  string   `json:"topicId"`
	HabitID  string   `json:"habitId"`
	Tags     []string `json:"tags"`
	Priority string   `json:"priority" binding:"omitempty,oneof=normal important"`
}

// UpdateIdeaRequest carries partial updates; nil fields are untouched.
// An empty TopicID detaches the idea from its topic.
type UpdateIdeaRequest struct {
	Text     *string   `json:"text"`
	TopicID  *string   `json:"topicId"`
	Tags     *[]string `json:"tags"`
	Priority *string   `json:"priority" binding:"omitempty,oneof=normal important"`
}

// IdeaFilter narrows idea listing; zero values mean "no filter".
type IdeaFilter struct {
	TopicID  string
	HabitID  string
	Tags     []string
	Priority string
	Search   string
	DateFrom time.Time
	DateTo   time.Time
}
