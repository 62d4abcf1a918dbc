package care

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestEventScore_Additive(t *testing.T) {
	e := Event{
		Actions:   Actions{Litter: true, Food: true},
		StoolType: StoolFormed,
	}
	// dirty litter 4 + food 2
	assert.Equal(t, 6, EventScore(e))
}

func TestEventScore_Table(t *testing.T) {
	w := dec("4.2")
	cases := []struct {
		name string
		e    Event
		want int
	}{
		{"clean litter", Event{Actions: Actions{Litter: true}, LitterClean: true}, 1},
		{"dirty litter", Event{Actions: Actions{Litter: true}, StoolType: StoolDiarrhea}, 4},
		{"food", Event{Actions: Actions{Food: true}}, 2},
		{"water", Event{Actions: Actions{Water: true}}, 2},
		{"grooming", Event{Actions: Actions{Grooming: true}}, 3},
		{"medication", Event{Actions: Actions{Medication: true}}, 2},
		{"supplements", Event{Actions: Actions{Supplements: true}}, 2},
		{"weight only", Event{Weight: &w}, 2},
		{"deworming scores nothing", Event{Actions: Actions{Deworming: true}}, 0},
		{"bath scores nothing", Event{Actions: Actions{Bath: true}}, 0},
		{"everything", Event{
			Actions: Actions{Food: true, Water: true, Litter: true, Grooming: true,
				Medication: true, Supplements: true, Deworming: true, Bath: true},
			StoolType: StoolFormed,
			Weight:    &w,
		}, 4 + 2 + 2 + 3 + 2 + 2 + 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EventScore(tc.e))
		})
	}
}

func TestWeekToDate_MondayStart(t *testing.T) {
	// 2026-03-12 is a Thursday; the week runs Mon 2026-03-09 .. Mon 2026-03-16.
	now := time.Date(2026, time.March, 12, 15, 0, 0, 0, time.UTC)
	w := WeekToDate(now, time.UTC)

	require.NotNil(t, w.From)
	require.NotNil(t, w.To)
	assert.Equal(t, time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC), *w.From)
	assert.Equal(t, time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC), *w.To)
}

func TestWeekToDate_SundayBelongsToRunningWeek(t *testing.T) {
	// Sunday 2026-03-15 is day 7 of the week that started Mon 2026-03-09.
	sunday := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	w := WeekToDate(sunday, time.UTC)
	assert.Equal(t, time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC), *w.From)
}

func TestWeekToDate_MondayIsItsOwnStart(t *testing.T) {
	monday := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
	w := WeekToDate(monday, time.UTC)
	assert.Equal(t, monday, *w.From)
	assert.True(t, w.Contains(monday))
	assert.False(t, w.Contains(monday.AddDate(0, 0, 7)))
}

func TestWindowedTotals_ZeroInitialization(t *testing.T) {
	totals := WindowedTotals(nil, AllTime(), []string{"A", "B"})
	assert.Equal(t, map[string]int{"A": 0, "B": 0}, totals)
}

func TestWindowedTotals_UnknownAuthorSkipped(t *testing.T) {
	ts := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	events := []Event{
		{OccurredAt: ts, Author: "A", Actions: Actions{Food: true}},
		{OccurredAt: ts, Author: "stranger", Actions: Actions{Food: true}},
	}

	totals := WindowedTotals(events, AllTime(), []string{"A", "B"})
	assert.Equal(t, map[string]int{"A": 2, "B": 0}, totals)
}

func TestWindowedTotals_WindowBounds(t *testing.T) {
	from := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	w := Window{From: &from, To: &to}

	events := []Event{
		{OccurredAt: from.Add(-time.Second), Author: "A", Actions: Actions{Food: true}},
		{OccurredAt: from, Author: "A", Actions: Actions{Water: true}},
		{OccurredAt: to.Add(-time.Second), Author: "A", Actions: Actions{Grooming: true}},
		{OccurredAt: to, Author: "A", Actions: Actions{Food: true}},
	}

	totals := WindowedTotals(events, w, []string{"A"})
	// water 2 + grooming 3; events at from-1s and exactly at to are outside.
	assert.Equal(t, map[string]int{"A": 5}, totals)
}

func TestWindowedTotals_WeekScenario(t *testing.T) {
	// Monday 09:00, caregivers {A, B}: water (2) + clean litter (1) => A: 3, B: 0.
	monday := time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC)
	events := []Event{
		{OccurredAt: monday, Author: "A", Actions: Actions{Water: true}},
		{OccurredAt: monday, Author: "A", Actions: Actions{Litter: true}, LitterClean: true},
	}

	totals := WindowedTotals(events, WeekToDate(monday, time.UTC), []string{"A", "B"})
	require.Equal(t, map[string]int{"A": 3, "B": 0}, totals)

	outcome := ResolveWinner(totals)
	assert.Equal(t, OutcomeWinner, outcome.Type)
	assert.Equal(t, "A", outcome.Name)
	assert.Equal(t, 3, outcome.Score)
}

func TestDailySeries(t *testing.T) {
	now := time.Date(2026, time.March, 12, 15, 0, 0, 0, time.UTC)
	today := time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)

	events := []Event{
		{OccurredAt: today.Add(9 * time.Hour), Author: "A", Actions: Actions{Food: true}},
		{OccurredAt: today.AddDate(0, 0, -1).Add(9 * time.Hour), Author: "B", Actions: Actions{Grooming: true}},
		{OccurredAt: today.AddDate(0, 0, -3).Add(9 * time.Hour), Author: "A", Actions: Actions{Food: true}},
	}

	series := DailySeries(events, now, 3, time.UTC, []string{"A", "B"})
	require.Len(t, series, 3)

	assert.Equal(t, today, series[0].Date)
	assert.Equal(t, map[string]int{"A": 2, "B": 0}, series[0].Totals)
	assert.Equal(t, map[string]int{"A": 0, "B": 3}, series[1].Totals)
	// Day -2 has no events, still zero-initialized; day -3 is out of range.
	assert.Equal(t, map[string]int{"A": 0, "B": 0}, series[2].Totals)
}
