package service

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/habitloop/backend/internal/client"
	"github.com/habitloop/backend/internal/db"
	"github.com/habitloop/backend/internal/template"
)

// PromptService produces AI idea prompts for habits flagged as
// idea-generating. It is only wired when an API key is configured.
type PromptService struct {
	repo   *db.Mongo
	ai     *client.PromptClient
	body   string
	logger *zap.Logger
}

func NewPromptService(repo *db.Mongo, ai *client.PromptClient, logger *zap.Logger) *PromptService {
	body := os.Getenv("IDEA_PROMPT_TEMPLATE")
	if body == "" {
		body = template.DefaultPromptBody
	}
	return &PromptService{repo: repo, ai: ai, body: body, logger: logger}
}

func (s *PromptService) IdeaPrompt(ctx context.Context, userID, habitID string) (string, error) {
	uid, hid, err := parseOwnedID(userID, habitID)
	if err != nil {
		return "", err
	}

	habit, err := s.repo.GetHabit(ctx, hid, uid)
	if err != nil {
		if db.IsNoDocuments(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	if !habit.IdeaGenerating {
		return "", ErrNotFound
	}

	body := template.RenderBody(s.body, template.HabitDataFromModel(habit))
	prompt, err := s.ai.Generate(ctx, body)
	if err != nil {
		s.logger.Warn("idea prompt generation failed",
			zap.String("habitId", habitID), zap.Error(err))
		return "", err
	}
	return prompt, nil
}
