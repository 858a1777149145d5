package topic

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/topics-backend/internal/domain"
)

// GetTopic returns a single active topic. Soft-deleted topics are not found.
func (s *Service) GetTopic(ctx context.Context, id uuid.UUID) (*View, error) {
	tid, err := topicID(id)
	if err != nil {
		return nil, err
	}

	topic, err := s.topics.GetByID(ctx, tid)
	if err != nil {
		return nil, fmt.Errorf("get topic %s: %w", tid, err)
	}
	if topic.IsDeleted() {
		return nil, fmt.Errorf("get topic %s: %w", tid, domain.ErrNotFound)
	}

	v := toView(topic)
	return &v, nil
}
