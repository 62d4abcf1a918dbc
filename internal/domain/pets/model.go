package pets

import "time"

// Species define the supported species.
// @Enum cat, dog
type Species string

const (
	SpeciesCat Species = "cat"
	SpeciesDog Species = "dog"
)

// Sex of the pet.
// @Enum male, female, unknown
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

// Pet is the shared profile caregivers log care events against.
type Pet struct {
	ID          string
	OwnerUserID string

	Name    string
	Species Species
	Sex     Sex

	BirthDate *time.Time

	// Timezone is the IANA zone all of this pet's day/period bucketing uses.
	// Classifying writes in one zone and reads in another shifts events
	// between buckets, so the zone lives on the pet, not on the caller.
	Timezone string

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Caregiver is one registered carer of a pet. Score attribution matches care
// events by display name; Color is for the scoreboard UI.
type Caregiver struct {
	ID     string
	PetID  string
	UserID string

	Name  string
	Color string

	CreatedAt time.Time
}
