package topic

import (
	"context"
	"fmt"

	"github.com/heartmarshall/topics-backend/internal/domain"
)

// ListTopics returns one page of topics, newest first. PageNumber and PageSize
// are clamped to the service's paging policy. A page past the end is empty
// but still carries the total count.
func (s *Service) ListTopics(ctx context.Context, input ListTopicsInput) (domain.Page[View], error) {
	input = input.normalize(s.defaultPageSize, s.maxPageSize)

	total, err := s.topics.Count(ctx, input.IncludeDeleted)
	if err != nil {
		return domain.Page[View]{}, fmt.Errorf("count topics: %w", err)
	}

	// Compare in page units first so a huge PageNumber cannot overflow the offset.
	if input.PageNumber-1 >= (total+input.PageSize-1)/input.PageSize {
		return domain.NewPage[View](nil, total, input.PageNumber, input.PageSize), nil
	}
	offset := (input.PageNumber - 1) * input.PageSize

	topics, err := s.topics.List(ctx, domain.TopicFilter{
		Limit:          input.PageSize,
		Offset:         offset,
		IncludeDeleted: input.IncludeDeleted,
	})
	if err != nil {
		return domain.Page[View]{}, fmt.Errorf("list topics: %w", err)
	}

	return domain.NewPage(toViews(topics), total, input.PageNumber, input.PageSize), nil
}
