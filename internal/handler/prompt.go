package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitloop/backend/internal/model"
	"github.com/habitloop/backend/internal/service"
)

type PromptHandler struct {
	svc *service.PromptService
}

func NewPromptHandler(svc *service.PromptService) *PromptHandler {
	return &PromptHandler{svc: svc}
}

// GetIdeaPrompt godoc
// @Summary Generate an idea prompt for an idea-generating habit
// @Tags habits
// @Produce json
// @Param id path string true "Habit ID"
// @Success 200 {object} model.IdeaPromptResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/habits/{id}/idea-prompt [get]
func (h *PromptHandler) GetIdeaPrompt(c *gin.Context) {
	claims := GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	habitID := c.Param("id")
	prompt, err := h.svc.IdeaPrompt(c.Request.Context(), claims.UserID, habitID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.IdeaPromptResponse{HabitID: habitID, Prompt: prompt})
}
