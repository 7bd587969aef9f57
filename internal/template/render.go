// Package template renders the idea-prompt body sent to the AI client.
//
// Supported variables:
//
//	{{habit.name}}, {{habit.category}}, {{habit.frequency}},
//	{{habit.priority}}
package template

import (
	"strings"

	"github.com/habitloop/backend/internal/model"
)

// DefaultPromptBody is used unless IDEA_PROMPT_TEMPLATE overrides it.
const DefaultPromptBody = "Suggest one short, concrete idea someone could capture after completing " +
	"their {{habit.frequency}} {{habit.category}} habit \"{{habit.name}}\". " +
	"Answer with a single sentence."

// HabitData holds the habit fields available to prompt templates.
type HabitData struct {
	Name      string
	Category  string
	Frequency string
	Priority  string
}

// HabitDataFromModel builds HabitData from a stored habit.
func HabitDataFromModel(habit *model.Habit) HabitData {
	return HabitData{
		Name:      habit.Name,
		Category:  habit.Category,
		Frequency: habit.Frequency,
		Priority:  habit.Priority,
	}
}

// RenderBody substitutes template variables with habit values. Unknown
// variables are left untouched.
func RenderBody(body string, habit HabitData) string {
	return strings.NewReplacer(
		"{{habit.name}}", habit.Name,
		"{{habit.category}}", habit.Category,
		"{{habit.frequency}}", habit.Frequency,
		"{{habit.priority}}", habit.Priority,
	).Replace(body)
}
