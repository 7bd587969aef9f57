package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/habitloop/backend/internal/db"
	"github.com/habitloop/backend/internal/model"
)

type TopicService struct {
	repo   *db.Mongo
	logger *zap.Logger
}

func NewTopicService(repo *db.Mongo, logger *zap.Logger) *TopicService {
	return &TopicService{repo: repo, logger: logger}
}

func (s *TopicService) Create(ctx context.Context, userID string, req model.CreateTopicRequest) (*model.Topic, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidInput
	}
	topic := &model.Topic{UserID: uid, Name: req.Name}
	if err := s.repo.CreateTopic(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *TopicService) List(ctx context.Context, userID string) ([]model.Topic, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidInput
	}
	return s.repo.ListTopics(ctx, uid)
}

// Delete archives rather than removes, so ideas keep a resolvable
// topic reference.
func (s *TopicService) Delete(ctx context.Context, userID, topicID string) error {
	uid, id, err := parseOwnedID(userID, topicID)
	if err != nil {
		return err
	}
	if err := s.repo.ArchiveTopic(ctx, id, uid); err != nil {
		if db.IsNoDocuments(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
