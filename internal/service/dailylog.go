package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/habitloop/backend/internal/db"
	"github.com/habitloop/backend/internal/model"
)

type DailyLogService struct {
	repo   *db.Mongo
	logger *zap.Logger
}

func NewDailyLogService(repo *db.Mongo, logger *zap.Logger) *DailyLogService {
	return &DailyLogService{repo: repo, logger: logger}
}

func (s *DailyLogService) Upsert(ctx context.Context, userID string, req model.UpsertDailyLogRequest) (*model.DailyLog, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidInput
	}
	date, err := parseDay(req.Date)
	if err != nil {
		return nil, ErrInvalidInput
	}
	return s.repo.UpsertDailyLog(ctx, uid, date, req.Notes, req.Mood)
}

// Get returns nil without error when the day has no entry.
func (s *DailyLogService) Get(ctx context.Context, userID, dateStr string) (*model.DailyLog, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidInput
	}
	date, err := parseDay(dateStr)
	if err != nil {
		return nil, ErrInvalidInput
	}
	log, err := s.repo.GetDailyLog(ctx, uid, date)
	if err != nil {
		if db.IsNoDocuments(err) {
			return nil, nil
		}
		return nil, err
	}
	return log, nil
}
