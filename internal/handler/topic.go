package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitloop/backend/internal/model"
	"github.com/habitloop/backend/internal/service"
)

type TopicHandler struct {
	svc *service.TopicService
}

func NewTopicHandler(svc *service.TopicService) *TopicHandler {
	return &TopicHandler{svc: svc}
}

// CreateTopic godoc
// @Summary Create a topic
// @Tags topics
// @Accept json
// @Produce json
// @Param request body model.CreateTopicRequest true "Topic name"
// @Success 200 {object} model.Topic
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/topics [post]
func (h *TopicHandler) CreateTopic(c *gin.Context) {
	claims := GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req model.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	topic, err := h.svc.Create(c.Request.Context(), claims.UserID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, topic)
}

// GetTopics godoc
// @Summary List non-archived topics, newest first
// @Tags topics
// @Produce json
// @Success 200 {array} model.Topic
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/topics [get]
func (h *TopicHandler) GetTopics(c *gin.Context) {
	claims := GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	topics, err := h.svc.List(c.Request.Context(), claims.UserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, topics)
}

// DeleteTopic godoc
// @Summary Archive a topic
// @Tags topics
// @Produce json
// @Param id path string true "Topic ID"
// @Success 200 {object} model.StatusResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/topics/{id} [delete]
func (h *TopicHandler) DeleteTopic(c *gin.Context) {
	claims := GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), claims.UserID, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: "archived"})
}
