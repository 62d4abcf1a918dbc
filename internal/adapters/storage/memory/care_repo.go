package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/vecear/Catlog-sub000/internal/domain/care"
)

type careRepo struct {
	mu   sync.RWMutex
	byID map[string]care.Event
}

func NewCareRepo() care.Repository {
	return &careRepo{
		byID: make(map[string]care.Event),
	}
}

func (r *careRepo) Create(ctx context.Context, e care.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("event id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("event already exists")
	}
	r.byID[e.ID] = e
	return nil
}

func (r *careRepo) GetByID(ctx context.Context, id string) (care.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return care.Event{}, ErrNotFound
	}
	return e, nil
}

// ListByPet filters on a half-open [From, To) range; the aggregation
// functions re-filter per day anyway, so the boundary convention only has to
// be consistent across adapters.
func (r *careRepo) ListByPet(ctx context.Context, petID string, filter care.ListFilter) ([]care.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]care.Event, 0)
	for _, e := range r.byID {
		if e.PetID != petID {
			continue
		}
		if filter.From != nil && e.OccurredAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !e.OccurredAt.Before(*filter.To) {
			continue
		}
		if filter.Author != "" && e.Author != filter.Author {
			continue
		}
		out = append(out, e)
	}

	// Newest first; ties keep a stable order by recording time.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].OccurredAt.Equal(out[j].OccurredAt) {
			return out[i].OccurredAt.After(out[j].OccurredAt)
		}
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *careRepo) Update(ctx context.Context, e care.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[e.ID]; !ok {
		return ErrNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *careRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
