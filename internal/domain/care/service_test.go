package care

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Event
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Event{}}
}

func (r *testRepo) Create(ctx context.Context, e Event) error {
	if e.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[e.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[e.ID] = e
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Event, error) {
	e, ok := r.byID[id]
	if !ok {
		return Event{}, errRepoNotFound
	}
	return e, nil
}

func (r *testRepo) ListByPet(ctx context.Context, petID string, filter ListFilter) ([]Event, error) {
	out := make([]Event, 0)
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
		out = append(out, e)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, e Event) error {
	if _, ok := r.byID[e.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errRepoNotFound
	}
	delete(r.byID, id)
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Log_RejectsEmptyEvent(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	_, err := svc.Log(context.Background(), "pet-1", LogInput{
		OccurredAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		Author:     "A",
	})
	if err != ErrEmptyEvent {
		t.Fatalf("expected ErrEmptyEvent, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected nothing persisted")
	}
}

func TestService_Log_SetsRecordedAtAndID(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 3, 10, 9, 5, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	e, err := svc.Log(context.Background(), "pet-1", LogInput{
		OccurredAt: now.Add(-time.Hour),
		Author:     " A ",
		Actions:    Actions{Food: true},
	})
	if err != nil {
		t.Fatalf("Log error: %v", err)
	}
	if e.ID == "" {
		t.Fatalf("expected generated ID")
	}
	if e.RecordedAt != now {
		t.Fatalf("expected RecordedAt to be now")
	}
	if e.Author != "A" {
		t.Fatalf("expected trimmed author, got %q", e.Author)
	}
}

func TestService_Update_Revalidates(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	e, err := svc.Log(context.Background(), "pet-1", LogInput{
		OccurredAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		Author:     "A",
		Actions:    Actions{Litter: true},
		StoolType:  StoolFormed,
	})
	if err != nil {
		t.Fatalf("Log error: %v", err)
	}

	// Dropping every flag must fail validation, not persist an empty event.
	_, err = svc.Update(context.Background(), e.ID, LogInput{})
	if err != ErrEmptyEvent {
		t.Fatalf("expected ErrEmptyEvent on empty update, got %v", err)
	}

	stored, _ := repo.GetByID(context.Background(), e.ID)
	if !stored.Actions.Litter {
		t.Fatalf("failed update must not overwrite the stored event")
	}
}

func TestService_DayStatus(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	for i, hour := range []int{7, 12, 18, 23} {
		_, err := svc.Log(context.Background(), "pet-1", LogInput{
			OccurredAt: day.Add(time.Duration(hour) * time.Hour),
			Author:     "A",
			Actions:    Actions{Food: true},
		})
		if err != nil {
			t.Fatalf("Log #%d error: %v", i, err)
		}
	}

	status, err := svc.DayStatus(context.Background(), "pet-1", day, time.UTC)
	if err != nil {
		t.Fatalf("DayStatus error: %v", err)
	}
	if !status[CategoryFood].Complete() {
		t.Fatalf("expected food complete, got %+v", status[CategoryFood])
	}
	if status[CategoryWater].Complete() {
		t.Fatalf("water must not be complete")
	}
}

func TestService_Scoreboard(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	monday := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return monday }

	if _, err := svc.Log(context.Background(), "pet-1", LogInput{
		OccurredAt: monday,
		Author:     "A",
		Actions:    Actions{Water: true},
	}); err != nil {
		t.Fatalf("Log error: %v", err)
	}
	if _, err := svc.Log(context.Background(), "pet-1", LogInput{
		OccurredAt:  monday,
		Author:      "A",
		Actions:     Actions{Litter: true},
		LitterClean: true,
	}); err != nil {
		t.Fatalf("Log error: %v", err)
	}
	// Last week's event counts all-time but not week-to-date.
	if _, err := svc.Log(context.Background(), "pet-1", LogInput{
		OccurredAt: monday.AddDate(0, 0, -3),
		Author:     "B",
		Actions:    Actions{Grooming: true},
	}); err != nil {
		t.Fatalf("Log error: %v", err)
	}

	board, err := svc.Scoreboard(context.Background(), "pet-1", time.UTC, []string{"A", "B"})
	if err != nil {
		t.Fatalf("Scoreboard error: %v", err)
	}

	if board.Week["A"] != 3 || board.Week["B"] != 0 {
		t.Fatalf("unexpected week totals: %+v", board.Week)
	}
	if board.AllTime["A"] != 3 || board.AllTime["B"] != 3 {
		t.Fatalf("unexpected all-time totals: %+v", board.AllTime)
	}
	if board.Outcome.Type != OutcomeWinner || board.Outcome.Name != "A" || board.Outcome.Score != 3 {
		t.Fatalf("unexpected outcome: %+v", board.Outcome)
	}
}

func TestService_MonthLog(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	if _, err := svc.Log(context.Background(), "pet-1", LogInput{
		OccurredAt: time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC),
		Author:     "A",
		Actions:    Actions{Food: true},
	}); err != nil {
		t.Fatalf("Log error: %v", err)
	}
	if _, err := svc.Log(context.Background(), "pet-1", LogInput{
		OccurredAt: time.Date(2026, 3, 17, 8, 0, 0, 0, time.UTC),
		Author:     "A",
		Actions:    Actions{Water: true},
	}); err != nil {
		t.Fatalf("Log error: %v", err)
	}

	groups, err := svc.MonthLog(context.Background(), "pet-1", 2026, time.March, time.UTC)
	if err != nil {
		t.Fatalf("MonthLog error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 day groups, got %d", len(groups))
	}
	if groups[0].Date.Day() != 17 || groups[1].Date.Day() != 3 {
		t.Fatalf("expected newest-day-first ordering, got %d then %d",
			groups[0].Date.Day(), groups[1].Date.Day())
	}
}
