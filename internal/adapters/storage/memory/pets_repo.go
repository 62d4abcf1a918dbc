package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/vecear/Catlog-sub000/internal/domain/pets"
)

var ErrNotFound = errors.New("not found")

type petRepo struct {
	mu            sync.RWMutex
	byID          map[string]pets.Pet
	caregiverByID map[string]pets.Caregiver
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID:          make(map[string]pets.Pet),
		caregiverByID: make(map[string]pets.Caregiver),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("pet already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *petRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.byID {
		if p.OwnerUserID == ownerUserID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *petRepo) AddCaregiver(ctx context.Context, c pets.Caregiver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		return errors.New("caregiver id required")
	}
	r.caregiverByID[c.ID] = c
	return nil
}

func (r *petRepo) ListCaregivers(ctx context.Context, petID string) ([]pets.Caregiver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Caregiver, 0)
	for _, c := range r.caregiverByID {
		if c.PetID == petID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *petRepo) RemoveCaregiver(ctx context.Context, petID, caregiverID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.caregiverByID[caregiverID]
	if !ok || c.PetID != petID {
		return ErrNotFound
	}
	delete(r.caregiverByID, caregiverID)
	return nil
}
