package care

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventValidate(t *testing.T) {
	w := dec("4.25")
	neg := dec("-1")

	cases := []struct {
		name    string
		e       Event
		wantErr error
	}{
		{"empty event", Event{}, ErrEmptyEvent},
		{"action only", Event{Actions: Actions{Food: true}}, nil},
		{"weight only", Event{Weight: &w}, nil},
		{"litter without detail", Event{Actions: Actions{Litter: true}}, ErrLitterDetail},
		{"litter with stool", Event{Actions: Actions{Litter: true}, StoolType: StoolFormed}, nil},
		{"litter with urine", Event{Actions: Actions{Litter: true}, UrineStatus: UrineHas}, nil},
		{"litter clean", Event{Actions: Actions{Litter: true}, LitterClean: true}, nil},
		{
			"clean plus stool conflict",
			Event{Actions: Actions{Litter: true}, LitterClean: true, StoolType: StoolFormed},
			ErrLitterCleanDetail,
		},
		{
			"stool without litter flag",
			Event{Actions: Actions{Food: true}, StoolType: StoolFormed},
			ErrLitterDetailNoFlag,
		},
		{"negative weight", Event{Weight: &neg}, ErrWeightNotPositive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.e.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestNormalizeWeight(t *testing.T) {
	w := dec("4.25")
	e := Event{Weight: &w}
	e.NormalizeWeight()
	assert.Equal(t, "4.3", e.Weight.String())

	e2 := Event{}
	e2.NormalizeWeight()
	assert.Nil(t, e2.Weight)
}
