package topic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/topics-backend/internal/domain"
)

// DeleteTopic soft-deletes an active topic. Deleting a topic that is already
// deleted reports domain.ErrNotFound.
func (s *Service) DeleteTopic(ctx context.Context, id uuid.UUID) error {
	tid, err := topicID(id)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		topic, getErr := s.topics.GetByIDForUpdate(txCtx, tid)
		if getErr != nil {
			return fmt.Errorf("get topic %s: %w", tid, getErr)
		}

		if delErr := topic.MarkDeleted(s.clock.Now()); delErr != nil {
			if errors.Is(delErr, domain.ErrAlreadyDeleted) {
				return fmt.Errorf("delete topic %s: %w", tid, domain.ErrNotFound)
			}
			return delErr
		}

		if updErr := s.topics.Update(txCtx, topic); updErr != nil {
			return fmt.Errorf("delete topic %s: %w", tid, updErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "topic deleted",
		slog.String("topic_id", tid.String()),
	)

	return nil
}
