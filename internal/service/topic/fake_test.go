package topic

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/heartmarshall/topics-backend/internal/domain"
)

// memStore is an in-memory topicRepo + txManager. RunInTx snapshots the
// table and restores it when the callback fails, so rollback is observable.
type memStore struct {
	mu     sync.Mutex
	rows   map[domain.TopicID]domain.Topic
	inTx   bool
	failOn string // method name that returns errInjected
}

var errInjected = errors.New("injected failure")

var (
	_ topicRepo = (*memStore)(nil)
	_ txManager = (*memStore)(nil)
)

func newMemStore() *memStore {
	return &memStore{rows: make(map[domain.TopicID]domain.Topic)}
}

func (m *memStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	snapshot := maps.Clone(m.rows)
	m.inTx = true
	m.mu.Unlock()

	err := fn(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.inTx = false
	if err != nil {
		m.rows = snapshot
		return err
	}
	return nil
}

func (m *memStore) check(ctx context.Context, method string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.failOn == method {
		return errInjected
	}
	return nil
}

func (m *memStore) GetByID(ctx context.Context, id domain.TopicID) (*domain.Topic, error) {
	if err := m.check(ctx, "GetByID"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (m *memStore) GetByIDForUpdate(ctx context.Context, id domain.TopicID) (*domain.Topic, error) {
	if err := m.check(ctx, "GetByIDForUpdate"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.inTx {
		return nil, fmt.Errorf("GetByIDForUpdate outside a transaction")
	}
	t, ok := m.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (m *memStore) Count(ctx context.Context, includeDeleted bool) (int, error) {
	if err := m.check(ctx, "Count"); err != nil {
		return 0, err
	}
	return len(m.sorted(func(t domain.Topic) bool { return includeDeleted || !t.IsDeleted() })), nil
}

func (m *memStore) List(ctx context.Context, filter domain.TopicFilter) ([]domain.Topic, error) {
	if err := m.check(ctx, "List"); err != nil {
		return nil, err
	}
	all := m.sorted(func(t domain.Topic) bool { return filter.IncludeDeleted || !t.IsDeleted() })
	if filter.Offset >= len(all) {
		return []domain.Topic{}, nil
	}
	end := min(filter.Offset+filter.Limit, len(all))
	return all[filter.Offset:end], nil
}

func (m *memStore) ListDeleted(ctx context.Context) ([]domain.Topic, error) {
	if err := m.check(ctx, "ListDeleted"); err != nil {
		return nil, err
	}
	return m.sorted(func(t domain.Topic) bool { return t.IsDeleted() }), nil
}

func (m *memStore) Create(ctx context.Context, topic *domain.Topic) error {
	if err := m.check(ctx, "Create"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[topic.ID]; ok {
		return domain.ErrAlreadyExists
	}
	m.rows[topic.ID] = *topic
	return nil
}

func (m *memStore) Update(ctx context.Context, topic *domain.Topic) error {
	if err := m.check(ctx, "Update"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[topic.ID]; !ok {
		return domain.ErrNotFound
	}
	m.rows[topic.ID] = *topic
	return nil
}

// sorted returns matching rows ordered by created_at DESC, id DESC.
func (m *memStore) sorted(keep func(domain.Topic) bool) []domain.Topic {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Topic, 0, len(m.rows))
	for _, t := range m.rows {
		if keep(t) {
			out = append(out, t)
		}
	}
	slices.SortFunc(out, func(a, b domain.Topic) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		ai, bi := a.ID.UUID(), b.ID.UUID()
		return bytes.Compare(bi[:], ai[:])
	})
	return out
}

// stepClock returns start, start+step, start+2*step, ...
type stepClock struct {
	mu   sync.Mutex
	next time.Time
	step time.Duration
}

func newStepClock() *stepClock {
	return &stepClock{
		next: time.Date(2026, 1, 21, 18, 1, 53, 0, time.UTC),
		step: time.Second,
	}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.next
	c.next = c.next.Add(c.step)
	return now
}
