package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

const defaultActivityRetention = 500

var ErrActivityActionRequired = errors.New("activity action is required")

// Activity is one recorded outcome of a project operation.
type Activity struct {
	ID      uint64    `json:"id" yaml:"id"`
	Action  string    `json:"action" yaml:"action"`
	Target  string    `json:"target,omitempty" yaml:"target,omitempty"`
	OK      bool      `json:"ok" yaml:"ok"`
	Message string    `json:"message,omitempty" yaml:"message,omitempty"`
	Error   string    `json:"error,omitempty" yaml:"error,omitempty"`
	At      time.Time `json:"at" yaml:"at"`
}

// ActivityStore keeps a bounded log of dialog outcomes.
type ActivityStore interface {
	Append(ctx context.Context, activity Activity) (Activity, error)
	// Recent returns up to limit entries, newest first. limit <= 0 means all.
	Recent(ctx context.Context, limit int) ([]Activity, error)
	Close() error
}

func normalizeActivity(activity Activity, now func() time.Time) (Activity, error) {
	activity.Action = strings.TrimSpace(activity.Action)
	if activity.Action == "" {
		return Activity{}, ErrActivityActionRequired
	}
	activity.Target = strings.TrimSpace(activity.Target)
	if activity.At.IsZero() {
		activity.At = now().UTC()
	}
	return activity, nil
}

// MemoryActivityStore keeps activities in process. It stands in when the
// database cannot be opened.
type MemoryActivityStore struct {
	mu        sync.Mutex
	items     []Activity
	next      uint64
	retention int
	now       func() time.Time
}

func NewMemoryActivityStore() *MemoryActivityStore {
	return &MemoryActivityStore{retention: defaultActivityRetention, now: time.Now}
}

func (s *MemoryActivityStore) Append(ctx context.Context, activity Activity) (Activity, error) {
	if err := ctx.Err(); err != nil {
		return Activity{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	activity, err := normalizeActivity(activity, s.now)
	if err != nil {
		return Activity{}, err
	}
	s.next++
	activity.ID = s.next
	s.items = append(s.items, activity)
	if over := len(s.items) - s.retention; over > 0 {
		s.items = append([]Activity(nil), s.items[over:]...)
	}
	return activity, nil
}

func (s *MemoryActivityStore) Recent(ctx context.Context, limit int) ([]Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Activity, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, s.items[i])
	}
	return out, nil
}

func (s *MemoryActivityStore) Close() error {
	return nil
}
