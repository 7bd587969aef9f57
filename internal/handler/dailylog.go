package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitloop/backend/internal/model"
	"github.com/habitloop/backend/internal/service"
)

type DailyLogHandler struct {
	svc *service.DailyLogService
}

func NewDailyLogHandler(svc *service.DailyLogService) *DailyLogHandler {
	return &DailyLogHandler{svc: svc}
}

// UpsertDailyLog godoc
// @Summary Write the day's journal entry (upsert)
// @Tags journal
// @Accept json
// @Produce json
// @Param request body model.UpsertDailyLogRequest true "Notes, mood, optional day"
// @Success 200 {object} model.DailyLog
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/journal [put]
func (h *DailyLogHandler) UpsertDailyLog(c *gin.Context) {
	claims := GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req model.UpsertDailyLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	log, err := h.svc.Upsert(c.Request.Context(), claims.UserID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

// GetDailyLog godoc
// @Summary Get the day's journal entry
// @Tags journal
// @Produce json
// @Param date query string false "Day in 2006-01-02 form; today when empty"
// @Success 200 {object} model.DailyLog
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/journal [get]
func (h *DailyLogHandler) GetDailyLog(c *gin.Context) {
	claims := GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	log, err := h.svc.Get(c.Request.Context(), claims.UserID, c.Query("date"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if log == nil {
		c.JSON(http.StatusOK, gin.H{"log": nil})
		return
	}
	c.JSON(http.StatusOK, log)
}
