package care

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyEvent         = errors.New("event must record at least one action or a weight")
	ErrLitterDetail       = errors.New("litter event needs stool, urine or clean flag")
	ErrLitterCleanDetail  = errors.New("clean litter event must not carry stool or urine details")
	ErrWeightNotPositive  = errors.New("weight must be positive")
	ErrLitterDetailNoFlag = errors.New("litter details given without litter action")
)

// StoolType describes the stool observed while cleaning the litter box.
type StoolType string

const (
	StoolNone     StoolType = ""
	StoolFormed   StoolType = "FORMED"
	StoolUnformed StoolType = "UNFORMED"
	StoolDiarrhea StoolType = "DIARRHEA"
)

// UrineStatus describes whether urine was found in the litter box.
type UrineStatus string

const (
	UrineNone UrineStatus = ""
	UrineHas  UrineStatus = "HAS_URINE"
	UrineNo   UrineStatus = "NO_URINE"
)

// Actions is the fixed set of care flags a single visit can cover.
// Several may be true on one event.
type Actions struct {
	Food        bool
	Water       bool
	Litter      bool
	Grooming    bool
	Medication  bool
	Supplements bool
	Deworming   bool
	Bath        bool
}

// Any reports whether at least one flag is set.
func (a Actions) Any() bool {
	return a.Food || a.Water || a.Litter || a.Grooming ||
		a.Medication || a.Supplements || a.Deworming || a.Bath
}

// Event is one logged caregiving visit against a pet.
type Event struct {
	ID    string
	PetID string

	OccurredAt time.Time
	RecordedAt time.Time

	// Author is the caregiver's display name. Unmatched authors stay in
	// history but are excluded from score totals.
	Author string

	Actions Actions

	// Litter details, only meaningful when Actions.Litter is set.
	// LitterClean is mutually exclusive with stool/urine details.
	StoolType   StoolType
	UrineStatus UrineStatus
	LitterClean bool

	// Weight in kilograms, one decimal place. Independent of the action
	// flags: a weight-only event is valid.
	Weight *decimal.Decimal

	Note string
}

// HasWeight reports whether the event carries a weight measurement.
func (e Event) HasWeight() bool { return e.Weight != nil }

// Validate enforces the construction-time invariants. Aggregation assumes
// validated events and never re-checks them inside a fold.
func (e Event) Validate() error {
	if !e.Actions.Any() && !e.HasWeight() {
		return ErrEmptyEvent
	}
	if e.Actions.Litter {
		if !e.LitterClean && e.StoolType == StoolNone && e.UrineStatus == UrineNone {
			return ErrLitterDetail
		}
		if e.LitterClean && (e.StoolType != StoolNone || e.UrineStatus != UrineNone) {
			return ErrLitterCleanDetail
		}
	} else if e.LitterClean || e.StoolType != StoolNone || e.UrineStatus != UrineNone {
		return ErrLitterDetailNoFlag
	}
	if e.Weight != nil && !e.Weight.IsPositive() {
		return ErrWeightNotPositive
	}
	return nil
}

// NormalizeWeight rounds the measurement to one decimal place, the precision
// the scale UI captures.
func (e *Event) NormalizeWeight() {
	if e.Weight != nil {
		w := e.Weight.Round(1)
		e.Weight = &w
	}
}
