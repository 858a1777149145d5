package topic

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/topics-backend/internal/domain"
)

// View is the read model returned by every operation.
type View struct {
	ID         uuid.UUID
	Title      string
	Summary    string
	TopicType  string
	City       string
	Street     string
	EventStart *time.Time
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
}

func toView(t *domain.Topic) View {
	return View{
		ID:         t.ID.UUID(),
		Title:      t.Title,
		Summary:    t.Summary,
		TopicType:  t.TopicType,
		City:       t.Location.City(),
		Street:     t.Location.Street(),
		EventStart: t.EventStart,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
		DeletedAt:  t.DeletedAt,
	}
}

func toViews(topics []domain.Topic) []View {
	views := make([]View, 0, len(topics))
	for i := range topics {
		views = append(views, toView(&topics[i]))
	}
	return views
}

// topicID converts a raw id. The nil UUID can never name a stored topic,
// so it is reported as not found rather than as a bad request.
func topicID(id uuid.UUID) (domain.TopicID, error) {
	tid, err := domain.ParseTopicID(id)
	if err != nil {
		return domain.TopicID{}, fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
	}
	return tid, nil
}
