package care

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Service owns care-event CRUD and the read-side aggregations. The
// aggregation itself is pure (AggregateDay, WindowedTotals, ...); the service
// only fetches the event snapshot and hands it to those functions.
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

type LogInput struct {
	OccurredAt time.Time
	Author     string

	Actions Actions

	StoolType   StoolType
	UrineStatus UrineStatus
	LitterClean bool

	Weight *decimal.Decimal
	Note   string
}

func (s *Service) Log(ctx context.Context, petID string, in LogInput) (Event, error) {
	if strings.TrimSpace(petID) == "" {
		return Event{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Author) == "" {
		return Event{}, ErrInvalidInput
	}
	if in.OccurredAt.IsZero() {
		return Event{}, ErrInvalidInput
	}

	e := Event{
		ID:          uuid.NewString(),
		PetID:       petID,
		OccurredAt:  in.OccurredAt,
		RecordedAt:  s.now(),
		Author:      strings.TrimSpace(in.Author),
		Actions:     in.Actions,
		StoolType:   in.StoolType,
		UrineStatus: in.UrineStatus,
		LitterClean: in.LitterClean,
		Weight:      in.Weight,
		Note:        strings.TrimSpace(in.Note),
	}
	e.NormalizeWeight()

	if err := e.Validate(); err != nil {
		return Event{}, err
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return Event{}, err
	}
	return e, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Event{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPet(ctx context.Context, petID string, filter ListFilter) ([]Event, error) {
	return s.repo.ListByPet(ctx, petID, filter)
}

// Update rebuilds the mutable fields and re-runs the construction-time
// validation, so a stored event can never drift into an invalid shape.
func (s *Service) Update(ctx context.Context, id string, in LogInput) (Event, error) {
	e, err := s.GetByID(ctx, id)
	if err != nil {
		return Event{}, err
	}

	if !in.OccurredAt.IsZero() {
		e.OccurredAt = in.OccurredAt
	}
	if strings.TrimSpace(in.Author) != "" {
		e.Author = strings.TrimSpace(in.Author)
	}
	e.Actions = in.Actions
	e.StoolType = in.StoolType
	e.UrineStatus = in.UrineStatus
	e.LitterClean = in.LitterClean
	e.Weight = in.Weight
	e.Note = strings.TrimSpace(in.Note)
	e.NormalizeWeight()

	if err := e.Validate(); err != nil {
		return Event{}, err
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return Event{}, err
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

// DayStatus aggregates the pet's events for ref's local day.
func (s *Service) DayStatus(ctx context.Context, petID string, ref time.Time, loc *time.Location) (DayStatus, error) {
	from := StartOfDay(ref, loc)
	to := from.AddDate(0, 0, 1)
	events, err := s.repo.ListByPet(ctx, petID, ListFilter{From: &from, To: &to})
	if err != nil {
		return nil, err
	}
	return AggregateDay(events, ref, loc), nil
}

// Scoreboard is the week-to-date and all-time standings for one pet.
type Scoreboard struct {
	Week    map[string]int
	AllTime map[string]int
	Outcome Outcome // winner resolution over the week totals
}

// Scoreboard computes per-caregiver totals for the current week and all time.
// Events whose author is not in the registry are left out of the totals; they
// stay in history (see the monthly log).
func (s *Service) Scoreboard(ctx context.Context, petID string, loc *time.Location, caregivers []string) (Scoreboard, error) {
	events, err := s.repo.ListByPet(ctx, petID, ListFilter{})
	if err != nil {
		return Scoreboard{}, err
	}

	week := WindowedTotals(events, WeekToDate(s.now(), loc), caregivers)

	known := make(map[string]struct{}, len(caregivers))
	for _, name := range caregivers {
		known[name] = struct{}{}
	}
	dropped := 0
	for _, e := range events {
		if _, ok := known[e.Author]; !ok {
			dropped++
		}
	}
	if dropped > 0 {
		slog.Debug("scoreboard skipped events from unknown authors",
			"pet_id", petID, "dropped", dropped)
	}

	return Scoreboard{
		Week:    week,
		AllTime: WindowedTotals(events, AllTime(), caregivers),
		Outcome: ResolveWinner(week),
	}, nil
}

// Series returns the trailing-days per-day score series for charting.
func (s *Service) Series(ctx context.Context, petID string, days int, loc *time.Location, caregivers []string) ([]DayTotals, error) {
	if days <= 0 {
		return nil, ErrInvalidInput
	}
	now := s.now()
	from := StartOfDay(now, loc).AddDate(0, 0, -(days - 1))
	events, err := s.repo.ListByPet(ctx, petID, ListFilter{From: &from})
	if err != nil {
		return nil, err
	}
	return DailySeries(events, now, days, loc, caregivers), nil
}

// MonthLog groups one month of the pet's history into day buckets, newest day
// first.
func (s *Service) MonthLog(ctx context.Context, petID string, year int, month time.Month, loc *time.Location) ([]DayGroup, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 1, 0)
	events, err := s.repo.ListByPet(ctx, petID, ListFilter{From: &from, To: &to})
	if err != nil {
		return nil, err
	}
	return GroupByMonth(events, year, month, loc), nil
}
