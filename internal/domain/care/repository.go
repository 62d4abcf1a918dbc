package care

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, e Event) error
	GetByID(ctx context.Context, id string) (Event, error)
	ListByPet(ctx context.Context, petID string, filter ListFilter) ([]Event, error)
	Update(ctx context.Context, e Event) error
	Delete(ctx context.Context, id string) error
}

type ListFilter struct {
	From   *time.Time
	To     *time.Time
	Author string
	Limit  int
}
