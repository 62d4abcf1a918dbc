package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error)

	AddCaregiver(ctx context.Context, c Caregiver) error
	ListCaregivers(ctx context.Context, petID string) ([]Caregiver, error)
	RemoveCaregiver(ctx context.Context, petID, caregiverID string) error
}
