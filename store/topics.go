package store

import (
	"context"

	"github.com/IanFindlay/nc-news/models"
)

func (s *Store) ListTopics(ctx context.Context) ([]models.Topic, error) {
	topics := make([]models.Topic, 0)
	if err := s.db.WithContext(ctx).Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

// InsertTopic creates a topic; a duplicate slug surfaces as a unique
// violation for the translator to map.
func (s *Store) InsertTopic(ctx context.Context, create models.TopicCreate) (*models.Topic, error) {
	topic := models.Topic{
		Slug:        create.Slug,
		Description: create.Description,
	}
	if err := s.db.WithContext(ctx).Create(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}
