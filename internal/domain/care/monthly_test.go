package care

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByMonth_OrderingAndOmission(t *testing.T) {
	third := time.Date(2026, time.March, 3, 8, 0, 0, 0, time.UTC)
	seventeenth := time.Date(2026, time.March, 17, 20, 0, 0, 0, time.UTC)

	events := []Event{
		{ID: "a", OccurredAt: third, Author: "A", Actions: Actions{Food: true}},
		{ID: "b", OccurredAt: seventeenth, Author: "B", Actions: Actions{Water: true}},
		{ID: "c", OccurredAt: third.Add(time.Hour), Author: "A", Actions: Actions{Water: true}},
		// April event never shows in March.
		{ID: "d", OccurredAt: third.AddDate(0, 1, 0), Author: "A", Actions: Actions{Food: true}},
	}

	groups := GroupByMonth(events, 2026, time.March, time.UTC)
	require.Len(t, groups, 2)

	assert.Equal(t, 17, groups[0].Date.Day())
	assert.Equal(t, 3, groups[1].Date.Day())

	require.Len(t, groups[0].Events, 1)
	assert.Equal(t, "b", groups[0].Events[0].ID)

	// In-day events keep their incoming relative order.
	require.Len(t, groups[1].Events, 2)
	assert.Equal(t, "a", groups[1].Events[0].ID)
	assert.Equal(t, "c", groups[1].Events[1].ID)
}

func TestGroupByMonth_EmptyMonth(t *testing.T) {
	groups := GroupByMonth(nil, 2026, time.February, time.UTC)
	assert.Empty(t, groups)
}

func TestGroupByMonth_LastDayOfMonth(t *testing.T) {
	// February 2024 is a leap month; the 29th must be scanned.
	leap := time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC)
	groups := GroupByMonth([]Event{
		{ID: "x", OccurredAt: leap, Author: "A", Actions: Actions{Food: true}},
	}, 2024, time.February, time.UTC)

	require.Len(t, groups, 1)
	assert.Equal(t, 29, groups[0].Date.Day())
}

func TestVisible_DisplayDepth(t *testing.T) {
	day := func(d int) DayGroup {
		return DayGroup{Date: time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)}
	}
	groups := []DayGroup{day(20), day(15), day(10), day(5)}

	assert.Len(t, Visible(groups, 2, false), 2)
	assert.Len(t, Visible(groups, 2, true), 4)
	assert.Len(t, Visible(groups, 0, false), 4)
	assert.Len(t, Visible(groups, 10, false), 4)

	// A slice over the same sequence, not a recomputation.
	assert.Equal(t, groups[:2], Visible(groups, 2, false))
}
