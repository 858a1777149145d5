package topic

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/topics-backend/internal/domain"
)

type topicRepo interface {
	GetByID(ctx context.Context, id domain.TopicID) (*domain.Topic, error)
	GetByIDForUpdate(ctx context.Context, id domain.TopicID) (*domain.Topic, error)
	Count(ctx context.Context, includeDeleted bool) (int, error)
	List(ctx context.Context, filter domain.TopicFilter) ([]domain.Topic, error)
	ListDeleted(ctx context.Context) ([]domain.Topic, error)
	Create(ctx context.Context, topic *domain.Topic) error
	Update(ctx context.Context, topic *domain.Topic) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Service provides topic management operations.
type Service struct {
	topics topicRepo
	tx     txManager
	clock  domain.Clock
	log    *slog.Logger

	defaultPageSize int
	maxPageSize     int
}

// Option configures a Service.
type Option func(*Service)

// WithPageSizes overrides the paging policy. Non-positive values keep the defaults.
func WithPageSizes(defaultSize, maxSize int) Option {
	return func(s *Service) {
		if maxSize > 0 {
			s.maxPageSize = maxSize
		}
		if defaultSize > 0 && defaultSize <= s.maxPageSize {
			s.defaultPageSize = defaultSize
		}
	}
}

// NewService creates a new Topic service.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	tx txManager,
	clock domain.Clock,
	opts ...Option,
) *Service {
	s := &Service{
		topics:          topics,
		tx:              tx,
		clock:           clock,
		log:             log.With("service", "topic"),
		defaultPageSize: DefaultPageSize,
		maxPageSize:     MaxPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
