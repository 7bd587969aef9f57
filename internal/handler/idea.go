package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/habitloop/backend/internal/model"
	"github.com/habitloop/backend/internal/service"
)

type IdeaHandler struct {
	svc *service.IdeaService
}

func NewIdeaHandler(svc *service.IdeaService) *IdeaHandler {
	return &IdeaHandler{svc: svc}
}

// CreateIdea godoc
// @Summary Capture an idea, optionally linked to a habit or topic
// @Tags ideas
// @Accept json
// @Produce json
// @Param request body model.CreateIdeaRequest true "Idea"
// @Success 200 {object} model.Idea
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/ideas [post]
func (h *IdeaHandler) CreateIdea(c *gin.Context) {
	claims := GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req model.CreateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	idea, err := h.svc.Create(c.Request.Context(), claims.UserID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, idea)
}

// GetIdeas godoc
// @Summary List ideas with optional filters
// @Tags ideas
// @Produce json
// @Param topicId query string false "Topic filter"
// @Param habitId query string false "Habit filter"
// @Param tags query string false "Comma-separated tags, any-match"
// @Param priority query string false "normal or important"
// @Param search query string false "Case-insensitive text search"
// @Param dateFrom query string false "Created-at lower bound (2006-01-02)"
// @Param dateTo query string false "Created-at upper bound (2006-01-02)"
// @Success 200 {array} model.Idea
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/ideas [get]
func (h *IdeaHandler) GetIdeas(c *gin.Context) {
	claims := GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	filter := model.IdeaFilter{
		TopicID:  c.Query("topicId"),
		HabitID:  c.Query("habitId"),
		Priority: c.Query("priority"),
		Search:   c.Query("search"),
	}
	if tags := c.Query("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filter.Tags = append(filter.Tags, tag)
			}
		}
	}
	if from := c.Query("dateFrom"); from != "" {
		t, err := time.ParseInLocation("2006-01-02", from, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dateFrom"})
			return
		}
		filter.DateFrom = t
	}
	if to := c.Query("dateTo"); to != "" {
		t, err := time.ParseInLocation("2006-01-02", to, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dateTo"})
			return
		}
		filter.DateTo = t
	}

	ideas, err := h.svc.List(c.Request.Context(), claims.UserID, filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ideas)
}

// UpdateIdea godoc
// @Summary Partially update an idea
// @Tags ideas
// @Accept json
// @Produce json
// @Param id path string true "Idea ID"
// @Param request body model.UpdateIdeaRequest true "Fields to change"
// @Success 200 {object} model.Idea
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/ideas/{id} [patch]
func (h *IdeaHandler) UpdateIdea(c *gin.Context) {
	claims := GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req model.UpdateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	idea, err := h.svc.Update(c.Request.Context(), claims.UserID, c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, idea)
}

// DeleteIdea godoc
// @Summary Delete an idea
// @Tags ideas
// @Produce json
// @Param id path string true "Idea ID"
// @Success 200 {object} model.StatusResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/ideas/{id} [delete]
func (h *IdeaHandler) DeleteIdea(c *gin.Context) {
	claims := GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), claims.UserID, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: "deleted"})
}
