package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/vecear/Catlog-sub000/internal/domain/care"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

// psql is the shared statement builder configured for Postgres dollar
// placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var careEventColumns = []string{
	"id", "pet_id",
	"occurred_at", "recorded_at", "author",
	"food", "water", "litter", "grooming",
	"medication", "supplements", "deworming", "bath",
	"stool_type", "urine_status", "litter_clean",
	"weight", "note",
}

type CareRepo struct {
	db *sql.DB
}

func NewCareRepo(db *sql.DB) *CareRepo {
	return &CareRepo{db: db}
}

func (r *CareRepo) Create(ctx context.Context, e care.Event) error {
	query, args, err := psql.Insert("care_events").
		Columns(careEventColumns...).
		Values(
			e.ID, e.PetID,
			e.OccurredAt, e.RecordedAt, e.Author,
			e.Actions.Food, e.Actions.Water, e.Actions.Litter, e.Actions.Grooming,
			e.Actions.Medication, e.Actions.Supplements, e.Actions.Deworming, e.Actions.Bath,
			string(e.StoolType), string(e.UrineStatus), e.LitterClean,
			nullDecimal(e.Weight), e.Note,
		).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *CareRepo) GetByID(ctx context.Context, id string) (care.Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return care.Event{}, ErrNotFound
	}

	query, args, err := psql.Select(careEventColumns...).
		From("care_events").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return care.Event{}, err
	}

	e, err := scanEvent(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return care.Event{}, ErrNotFound
	}
	return e, err
}

// ListByPet uses a half-open [From, To) range, matching the memory adapter.
func (r *CareRepo) ListByPet(ctx context.Context, petID string, filter care.ListFilter) ([]care.Event, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, nil
	}

	q := psql.Select(careEventColumns...).
		From("care_events").
		Where(sq.Eq{"pet_id": petID}).
		OrderBy("occurred_at DESC", "recorded_at DESC")

	if filter.From != nil {
		q = q.Where(sq.GtOrEq{"occurred_at": *filter.From})
	}
	if filter.To != nil {
		q = q.Where(sq.Lt{"occurred_at": *filter.To})
	}
	if filter.Author != "" {
		q = q.Where(sq.Eq{"author": filter.Author})
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]care.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *CareRepo) Update(ctx context.Context, e care.Event) error {
	query, args, err := psql.Update("care_events").
		Set("occurred_at", e.OccurredAt).
		Set("author", e.Author).
		Set("food", e.Actions.Food).
		Set("water", e.Actions.Water).
		Set("litter", e.Actions.Litter).
		Set("grooming", e.Actions.Grooming).
		Set("medication", e.Actions.Medication).
		Set("supplements", e.Actions.Supplements).
		Set("deworming", e.Actions.Deworming).
		Set("bath", e.Actions.Bath).
		Set("stool_type", string(e.StoolType)).
		Set("urine_status", string(e.UrineStatus)).
		Set("litter_clean", e.LitterClean).
		Set("weight", nullDecimal(e.Weight)).
		Set("note", e.Note).
		Where(sq.Eq{"id": e.ID}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CareRepo) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("care_events").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (care.Event, error) {
	var (
		e      care.Event
		stool  string
		urine  string
		weight decimal.NullDecimal
	)
	if err := row.Scan(
		&e.ID, &e.PetID,
		&e.OccurredAt, &e.RecordedAt, &e.Author,
		&e.Actions.Food, &e.Actions.Water, &e.Actions.Litter, &e.Actions.Grooming,
		&e.Actions.Medication, &e.Actions.Supplements, &e.Actions.Deworming, &e.Actions.Bath,
		&stool, &urine, &e.LitterClean,
		&weight, &e.Note,
	); err != nil {
		return care.Event{}, err
	}

	e.StoolType = care.StoolType(stool)
	e.UrineStatus = care.UrineStatus(urine)
	if weight.Valid {
		w := weight.Decimal
		e.Weight = &w
	}
	return e, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
