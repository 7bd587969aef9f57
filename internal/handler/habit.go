package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitloop/backend/internal/model"
	"github.com/habitloop/backend/internal/service"
)

type HabitHandler struct {
	svc *service.HabitService
}

func NewHabitHandler(svc *service.HabitService) *HabitHandler {
	return &HabitHandler{svc: svc}
}

// CreateHabit godoc
// @Summary Create a habit
// @Tags habits
// @Accept json
// @Produce json
// @Param request body model.CreateHabitRequest true "Habit definition"
// @Success 200 {object} model.Habit
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/habits [post]
func (h *HabitHandler) CreateHabit(c *gin.Context) {
	claims := GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req model.CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	habit, err := h.svc.Create(c.Request.Context(), claims.UserID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, habit)
}

// GetHabits godoc
// @Summary List habits, newest first
// @Tags habits
// @Produce json
// @Success 200 {array} model.Habit
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/habits [get]
func (h *HabitHandler) GetHabits(c *gin.Context) {
	claims := GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	habits, err := h.svc.List(c.Request.Context(), claims.UserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, habits)
}

// GetTodayHabits godoc
// @Summary List habits with today's log status
// @Tags habits
// @Produce json
// @Success 200 {array} model.HabitWithStatus
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/habits/today [get]
func (h *HabitHandler) GetTodayHabits(c *gin.Context) {
	claims := GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	habits, err := h.svc.Today(c.Request.Context(), claims.UserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, habits)
}

// DeleteHabit godoc
// @Summary Delete a habit, its logs, and detach referencing ideas
// @Tags habits
// @Produce json
// @Param id path string true "Habit ID"
// @Success 200 {object} model.StatusResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/habits/{id} [delete]
func (h *HabitHandler) DeleteHabit(c *gin.Context) {
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

// LogHabit godoc
// @Summary Record done/skipped for one day (upsert)
// @Tags habits
// @Accept json
// @Produce json
// @Param id path string true "Habit ID"
// @Param request body model.LogHabitRequest true "Status and optional day"
// @Success 200 {object} model.HabitLog
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/habits/{id}/logs [post]
func (h *HabitHandler) LogHabit(c *gin.Context) {
	claims := GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req model.LogHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	log, err := h.svc.Log(c.Request.Context(), claims.UserID, c.Param("id"), req.Status, req.Date)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

// GetLogs godoc
// @Summary List habit logs, newest first
// @Tags habits
// @Produce json
// @Param habitId query string false "Limit to one habit"
// @Success 200 {array} model.HabitLog
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/logs [get]
func (h *HabitHandler) GetLogs(c *gin.Context) {
	claims := GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	logs, err := h.svc.Logs(c.Request.Context(), claims.UserID, c.Query("habitId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// GetStreak godoc
// @Summary Current consecutive-day completion streak
// @Tags habits
// @Produce json
// @Param id path string true "Habit ID"
// @Success 200 {object} model.StreakResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/habits/{id}/streak [get]
func (h *HabitHandler) GetStreak(c *gin.Context) {
	claims := GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	habitID := c.Param("id")
	count, err := h.svc.Streak(c.Request.Context(), claims.UserID, habitID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StreakResponse{HabitID: habitID, Streak: count})
}
