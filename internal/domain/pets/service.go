package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrBadTimezone  = errors.New("unknown timezone")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name      string
	Species   string
	Sex       string
	BirthDate *time.Time
	Timezone  string
	Notes     string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}

	tz := strings.TrimSpace(in.Timezone)
	if tz == "" {
		tz = "UTC"
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return Pet{}, ErrBadTimezone
	}

	species := Species(strings.TrimSpace(in.Species))
	if species == "" {
		species = SpeciesCat
	}
	sex := Sex(strings.TrimSpace(in.Sex))
	if sex == "" {
		sex = SexUnknown
	}

	now := s.now()
	p := Pet{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Name:        strings.TrimSpace(in.Name),
		Species:     species,
		Sex:         sex,
		BirthDate:   in.BirthDate,
		Timezone:    tz,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

// Location resolves the pet's IANA zone. Falls back to UTC only if the stored
// zone is somehow invalid (Create rejects bad zones).
func (p Pet) Location() *time.Location {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type CaregiverInput struct {
	UserID string
	Name   string
	Color  string
}

// AddCaregiver registers a carer by display name. Names must be unique per
// pet: the scoreboard attributes events by author name.
func (s *Service) AddCaregiver(ctx context.Context, petID string, in CaregiverInput) (Caregiver, error) {
	if strings.TrimSpace(petID) == "" || strings.TrimSpace(in.Name) == "" {
		return Caregiver{}, ErrInvalidInput
	}

	existing, err := s.repo.ListCaregivers(ctx, petID)
	if err != nil {
		return Caregiver{}, err
	}
	for _, c := range existing {
		if c.Name == strings.TrimSpace(in.Name) {
			return Caregiver{}, ErrInvalidInput
		}
	}

	c := Caregiver{
		ID:        uuid.NewString(),
		PetID:     petID,
		UserID:    strings.TrimSpace(in.UserID),
		Name:      strings.TrimSpace(in.Name),
		Color:     strings.TrimSpace(in.Color),
		CreatedAt: s.now(),
	}
	if err := s.repo.AddCaregiver(ctx, c); err != nil {
		return Caregiver{}, err
	}
	return c, nil
}

func (s *Service) ListCaregivers(ctx context.Context, petID string) ([]Caregiver, error) {
	return s.repo.ListCaregivers(ctx, petID)
}

// CaregiverNames returns just the display names, the shape the scoring engine
// consumes.
func (s *Service) CaregiverNames(ctx context.Context, petID string) ([]string, error) {
	cs, err := s.repo.ListCaregivers(ctx, petID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(cs))
	for _, c := range cs {
		names = append(names, c.Name)
	}
	return names, nil
}

func (s *Service) RemoveCaregiver(ctx context.Context, petID, caregiverID string) error {
	if strings.TrimSpace(petID) == "" || strings.TrimSpace(caregiverID) == "" {
		return ErrInvalidInput
	}
	return s.repo.RemoveCaregiver(ctx, petID, caregiverID)
}

// CanAccess reports whether the user owns the pet or is a registered
// caregiver of it.
func (s *Service) CanAccess(ctx context.Context, petID, userID string) (bool, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return false, err
	}
	if p.OwnerUserID == userID {
		return true, nil
	}
	cs, err := s.repo.ListCaregivers(ctx, petID)
	if err != nil {
		return false, err
	}
	for _, c := range cs {
		if c.UserID != "" && c.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}
