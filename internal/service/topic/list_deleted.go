package topic

import (
	"context"
	"fmt"
)

// ListDeletedTopics returns every soft-deleted topic, newest first.
func (s *Service) ListDeletedTopics(ctx context.Context) ([]View, error) {
	topics, err := s.topics.ListDeleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("list deleted topics: %w", err)
	}
	return toViews(topics), nil
}
