package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/habitloop/backend/internal/db"
	"github.com/habitloop/backend/internal/model"
)

type IdeaService struct {
	repo   *db.Mongo
	logger *zap.Logger
}

func NewIdeaService(repo *db.Mongo, logger *zap.Logger) *IdeaService {
	return &IdeaService{repo: repo, logger: logger}
}

func (s *IdeaService) Create(ctx context.Context, userID string, req model.CreateIdeaRequest) (*model.Idea, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidInput
	}

	idea := &model.Idea{
		UserID:   uid,
		Text:     req.Text,
		Tags:     req.Tags,
		Priority: req.Priority,
	}
	if idea.Priority == "" {
		idea.Priority = "normal"
	}

	if req.TopicID != "" {
		tid, err := primitive.ObjectIDFromHex(req.TopicID)
		if err != nil {
			return nil, ErrNotFound
		}
		// linked topics must belong to the caller
		if _, err := s.repo.GetTopic(ctx, tid, uid); err != nil {
			if db.IsNoDocuments(err) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		idea.TopicID = &tid
	}
	if req.HabitID != "" {
		hid, err := primitive.ObjectIDFromHex(req.HabitID)
		if err != nil {
			return nil, ErrNotFound
		}
		idea.HabitID = &hid
	}

	if err := s.repo.CreateIdea(ctx, idea); err != nil {
		return nil, err
	}
	return idea, nil
}

func (s *IdeaService) List(ctx context.Context, userID string, filter model.IdeaFilter) ([]model.Idea, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidInput
	}
	for _, ref := range []string{filter.TopicID, filter.HabitID} {
		if ref == "" {
			continue
		}
		if _, err := primitive.ObjectIDFromHex(ref); err != nil {
			return nil, ErrInvalidInput
		}
	}
	return s.repo.ListIdeas(ctx, uid, filter)
}

func (s *IdeaService) Update(ctx context.Context, userID, ideaID string, req model.UpdateIdeaRequest) (*model.Idea, error) {
	uid, id, err := parseOwnedID(userID, ideaID)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	unset := bson.M{}

	if req.Text != nil {
		if *req.Text == "" {
			return nil, ErrInvalidInput
		}
		set["text"] = *req.Text
	}
	if req.TopicID != nil {
		if *req.TopicID == "" {
			unset["topicId"] = 1
		} else {
			tid, err := primitive.ObjectIDFromHex(*req.TopicID)
			if err != nil {
				return nil, ErrNotFound
			}
			if _, err := s.repo.GetTopic(ctx, tid, uid); err != nil {
				if db.IsNoDocuments(err) {
					return nil, ErrNotFound
				}
				return nil, err
			}
			set["topicId"] = tid
		}
	}
	if req.Tags != nil {
		set["tags"] = *req.Tags
	}
	if req.Priority != nil {
		set["priority"] = *req.Priority
	}

	idea, err := s.repo.UpdateIdea(ctx, id, uid, set, unset)
	if err != nil {
		if db.IsNoDocuments(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return idea, nil
}

func (s *IdeaService) Delete(ctx context.Context, userID, ideaID string) error {
	uid, id, err := parseOwnedID(userID, ideaID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteIdea(ctx, id, uid); err != nil {
		if db.IsNoDocuments(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
