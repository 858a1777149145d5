package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/topics-backend/internal/domain"
)

// UpdateTopic replaces the mutable fields of an active topic.
func (s *Service) UpdateTopic(ctx context.Context, id uuid.UUID, input TopicInput) (*View, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tid, err := topicID(id)
	if err != nil {
		return nil, err
	}

	fields, err := input.fields()
	if err != nil {
		return nil, err
	}

	var topic *domain.Topic
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		topic, getErr = s.topics.GetByIDForUpdate(txCtx, tid)
		if getErr != nil {
			return fmt.Errorf("get topic %s: %w", tid, getErr)
		}
		if topic.IsDeleted() {
			return fmt.Errorf("get topic %s: %w", tid, domain.ErrNotFound)
		}

		if updErr := topic.Update(fields, s.clock.Now()); updErr != nil {
			return updErr
		}

		if updErr := s.topics.Update(txCtx, topic); updErr != nil {
			return fmt.Errorf("update topic %s: %w", tid, updErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topic updated",
		slog.String("topic_id", tid.String()),
	)

	v := toView(topic)
	return &v, nil
}
