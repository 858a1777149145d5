package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/topics-backend/internal/domain"
)

// CreateTopic validates input and persists a new topic. Invalid input is
// rejected before a transaction is opened.
func (s *Service) CreateTopic(ctx context.Context, input TopicInput) (*View, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	fields, err := input.fields()
	if err != nil {
		return nil, err
	}

	topic, err := domain.NewTopic(domain.NewTopicID(), fields, s.clock.Now())
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.topics.Create(txCtx, topic); createErr != nil {
			return fmt.Errorf("create topic %s: %w", topic.ID, createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topic created",
		slog.String("topic_id", topic.ID.String()),
		slog.String("title", topic.Title),
	)

	v := toView(topic)
	return &v, nil
}
