package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	topicsvc "github.com/heartmarshall/topics-backend/internal/service/topic"
)

type topicCounter interface {
	Count(ctx context.Context, includeDeleted bool) (int, error)
}

type topicCreator interface {
	CreateTopic(ctx context.Context, input topicsvc.TopicInput) (*topicsvc.View, error)
}

func initialTopics() []topicsvc.TopicInput {
	at := func(y int, m time.Month, d, h int) *time.Time {
		t := time.Date(y, m, d, h, 0, 0, 0, time.UTC)
		return &t
	}
	return []topicsvc.TopicInput{
		{
			Title:      "Go meetup",
			Summary:    "Monthly evening of lightning talks about Go in production.",
			TopicType:  "meetup",
			Location:   &topicsvc.LocationInput{City: "Berlin", Street: "Oranienstr 185"},
			EventStart: at(2026, time.November, 12, 18),
		},
		{
			Title:     "Postgres internals reading group",
			Summary:   "We read one chapter of the PostgreSQL docs and discuss it.",
			TopicType: "study",
			Location:  &topicsvc.LocationInput{City: "Hamburg", Street: "Grosse Elbstr 14"},
		},
		{
			Title:      "Open source sprint",
			Summary:    "A day of pairing on first issues for new contributors.",
			TopicType:  "workshop",
			Location:   &topicsvc.LocationInput{City: "Munich", Street: "Leopoldstr 8"},
			EventStart: at(2026, time.December, 5, 9),
		},
	}
}

// SeedTopics inserts the initial topics through the service when the topics
// table holds no rows at all, soft-deleted ones included. It returns the
// number of topics created.
func SeedTopics(ctx context.Context, log *slog.Logger, counter topicCounter, creator topicCreator) (int, error) {
	n, err := counter.Count(ctx, true)
	if err != nil {
		return 0, fmt.Errorf("count topics: %w", err)
	}
	if n > 0 {
		log.InfoContext(ctx, "seed skipped, topics present", slog.Int("count", n))
		return 0, nil
	}

	created := 0
	for _, in := range initialTopics() {
		if _, err := creator.CreateTopic(ctx, in); err != nil {
			return created, fmt.Errorf("seed topic %q: %w", in.Title, err)
		}
		created++
	}

	log.InfoContext(ctx, "seed completed", slog.Int("created", created))
	return created, nil
}
