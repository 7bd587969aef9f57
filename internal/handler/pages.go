package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/habitloop/backend/internal/model"
	"github.com/habitloop/backend/internal/service"
)

// PageHandler serves the server-rendered pages. The PageGate middleware
// has already settled who may see what; handlers here only load data
// for the verified session.
type PageHandler struct {
	auth   *service.AuthService
	habits *service.HabitService
	ideas  *service.IdeaService
	topics *service.TopicService
	daily  *service.DailyLogService
	logger *zap.Logger
}

func NewPageHandler(auth *service.AuthService, habits *service.HabitService, ideas *service.IdeaService, topics *service.TopicService, daily *service.DailyLogService, logger *zap.Logger) *PageHandler {
	return &PageHandler{auth: auth, habits: habits, ideas: ideas, topics: topics, daily: daily, logger: logger}
}

func (h *PageHandler) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *PageHandler) Login(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Title": "Login"})
}

func (h *PageHandler) Signup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{"Title": "Sign up"})
}

func (h *PageHandler) Dashboard(c *gin.Context) {
	claims, err := h.auth.RequireUser(c)
	if err != nil {
		c.Redirect(http.StatusFound, "/auth/login")
		return
	}

	habits, err := h.habits.Today(c.Request.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("dashboard load failed", zap.Error(err))
		habits = []model.HabitWithStatus{}
	}

	streaks := make(map[string]int, len(habits))
	for _, habit := range habits {
		count, err := h.habits.Streak(c.Request.Context(), claims.UserID, habit.ID.Hex())
		if err != nil {
			continue
		}
		streaks[habit.ID.Hex()] = count
	}

	journal, err := h.daily.Get(c.Request.Context(), claims.UserID, "")
	if err != nil {
		journal = nil
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title":   "Dashboard",
		"Email":   claims.Email,
		"Habits":  habits,
		"Streaks": streaks,
		"Journal": journal,
	})
}

func (h *PageHandler) Habits(c *gin.Context) {
	claims, err := h.auth.RequireUser(c)
	if err != nil {
		c.Redirect(http.StatusFound, "/auth/login")
		return
	}

	habits, err := h.habits.List(c.Request.Context(), claims.UserID)
	if err != nil {
		habits = []model.Habit{}
	}
	c.HTML(http.StatusOK, "habits.html", gin.H{
		"Title":  "Habits",
		"Habits": habits,
	})
}

func (h *PageHandler) Ideas(c *gin.Context) {
	claims, err := h.auth.RequireUser(c)
	if err != nil {
		c.Redirect(http.StatusFound, "/auth/login")
		return
	}

	ideas, err := h.ideas.List(c.Request.Context(), claims.UserID, model.IdeaFilter{})
	if err != nil {
		ideas = []model.Idea{}
	}
	topics, err := h.topics.List(c.Request.Context(), claims.UserID)
	if err != nil {
		topics = []model.Topic{}
	}
	c.HTML(http.StatusOK, "ideas.html", gin.H{
		"Title":  "Ideas",
		"Ideas":  ideas,
		"Topics": topics,
	})
}

func (h *PageHandler) Profile(c *gin.Context) {
	claims, err := h.auth.RequireUser(c)
	if err != nil {
		c.Redirect(http.StatusFound, "/auth/login")
		return
	}

	theme, err := h.auth.Theme(c.Request.Context(), claims.UserID)
	if err != nil {
		theme = "light"
	}
	c.HTML(http.StatusOK, "profile.html", gin.H{
		"Title": "Profile",
		"Email": claims.Email,
		"Theme": theme,
	})
}
