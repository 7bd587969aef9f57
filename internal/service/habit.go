package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/habitloop/backend/internal/db"
	"github.com/habitloop/backend/internal/model"
	"github.com/habitloop/backend/internal/streak"
)

// streakHistoryCap bounds how far back the streak walk looks.
const streakHistoryCap = 365

type HabitService struct {
	repo   *db.Mongo
	logger *zap.Logger
}

func NewHabitService(repo *db.Mongo, logger *zap.Logger) *HabitService {
	return &HabitService{repo: repo, logger: logger}
}

func (s *HabitService) Create(ctx context.Context, userID string, req model.CreateHabitRequest) (*model.Habit, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidInput
	}
	habit := &model.Habit{
		UserID:         uid,
		Name:           req.Name,
		Category:       req.Category,
		Frequency:      req.Frequency,
		Priority:       req.Priority,
		ReminderTime:   req.ReminderTime,
		IdeaGenerating: req.IdeaGenerating,
	}
	if err := s.repo.CreateHabit(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

func (s *HabitService) List(ctx context.Context, userID string) ([]model.Habit, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidInput
	}
	return s.repo.ListHabits(ctx, uid)
}

func (s *HabitService) Delete(ctx context.Context, userID, habitID string) error {
	uid, hid, err := parseOwnedID(userID, habitID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteHabit(ctx, hid, uid); err != nil {
		if db.IsNoDocuments(err) {
			return ErrNotFound
		}
		return err
	}
	s.logger.Info("habit deleted", zap.String("habitId", habitID))
	return nil
}

// Log records done/skipped for one calendar day, upserting so a second
// write for the same day overwrites the first. Ownership is checked
// before writing.
func (s *HabitService) Log(ctx context.Context, userID, habitID, status, dateStr string) (*model.HabitLog, error) {
	uid, hid, err := parseOwnedID(userID, habitID)
	if err != nil {
		return nil, err
	}

	date, err := parseDay(dateStr)
	if err != nil {
		return nil, ErrInvalidInput
	}

	if _, err := s.repo.GetHabit(ctx, hid, uid); err != nil {
		if db.IsNoDocuments(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.repo.UpsertHabitLog(ctx, hid, uid, date, status)
}

func (s *HabitService) Logs(ctx context.Context, userID, habitID string) ([]model.HabitLog, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidInput
	}
	var hid *primitive.ObjectID
	if habitID != "" {
		id, err := primitive.ObjectIDFromHex(habitID)
		if err != nil {
			return nil, ErrInvalidInput
		}
		hid = &id
	}
	return s.repo.ListHabitLogs(ctx, uid, hid)
}

// Today lists the user's habits annotated with today's log status.
func (s *HabitService) Today(ctx context.Context, userID string) ([]model.HabitWithStatus, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidInput
	}

	habits, err := s.repo.ListHabits(ctx, uid)
	if err != nil {
		return nil, err
	}
	logs, err := s.repo.ListLogsForDate(ctx, uid, streak.Day(time.Now()))
	if err != nil {
		return nil, err
	}

	statusByHabit := make(map[primitive.ObjectID]string, len(logs))
	for _, log := range logs {
		statusByHabit[log.HabitID] = log.Status
	}

	result := make([]model.HabitWithStatus, 0, len(habits))
	for _, habit := range habits {
		result = append(result, model.HabitWithStatus{
			Habit:       habit,
			TodayStatus: statusByHabit[habit.ID],
		})
	}
	return result, nil
}

// Streak recomputes the habit's current streak from scratch; nothing is
// cached or stored.
func (s *HabitService) Streak(ctx context.Context, userID, habitID string) (int, error) {
	uid, hid, err := parseOwnedID(userID, habitID)
	if err != nil {
		return 0, err
	}

	logs, err := s.repo.ListDoneLogs(ctx, hid, uid, streakHistoryCap)
	if err != nil {
		return 0, err
	}

	entries := make([]streak.Entry, len(logs))
	for i, log := range logs {
		entries[i] = streak.Entry{Date: log.Date}
	}
	return streak.Current(entries, time.Now()), nil
}

func parseOwnedID(userID, docID string) (primitive.ObjectID, primitive.ObjectID, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, ErrInvalidInput
	}
	id, err := primitive.ObjectIDFromHex(docID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, ErrNotFound
	}
	return uid, id, nil
}

// parseDay normalizes to local midnight; empty means today.
func parseDay(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return streak.Day(time.Now()), nil
	}
	t, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return streak.Day(t), nil
}
