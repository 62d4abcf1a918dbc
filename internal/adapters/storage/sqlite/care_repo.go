package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/vecear/Catlog-sub000/internal/domain/care"

	"github.com/shopspring/decimal"
)

type CareRepo struct {
	db *sql.DB
}

func NewCareRepo(db *sql.DB) *CareRepo {
	return &CareRepo{db: db}
}

const careEventCols = `
	id, pet_id, occurred_at, recorded_at, author,
	food, water, litter, grooming, medication, supplements, deworming, bath,
	stool_type, urine_status, litter_clean, weight, note`

func (r *CareRepo) Create(ctx context.Context, e care.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO care_events (`+careEventCols+`)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
	`,
		e.ID, e.PetID, e.OccurredAt.UnixMilli(), e.RecordedAt.UnixMilli(), e.Author,
		e.Actions.Food, e.Actions.Water, e.Actions.Litter, e.Actions.Grooming,
		e.Actions.Medication, e.Actions.Supplements, e.Actions.Deworming, e.Actions.Bath,
		string(e.StoolType), string(e.UrineStatus), e.LitterClean,
		weightString(e.Weight), e.Note,
	)
	return err
}

func (r *CareRepo) GetByID(ctx context.Context, id string) (care.Event, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+careEventCols+` FROM care_events WHERE id = ?
	`, strings.TrimSpace(id))

	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return care.Event{}, ErrNotFound
	}
	return e, err
}

func (r *CareRepo) ListByPet(ctx context.Context, petID string, filter care.ListFilter) ([]care.Event, error) {
	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + careEventCols + ` FROM care_events WHERE pet_id = ?`)
	args := []any{petID}

	if filter.From != nil {
		sb.WriteString(" AND occurred_at >= ?")
		args = append(args, filter.From.UnixMilli())
	}
	if filter.To != nil {
		sb.WriteString(" AND occurred_at < ?")
		args = append(args, filter.To.UnixMilli())
	}
	if filter.Author != "" {
		sb.WriteString(" AND author = ?")
		args = append(args, filter.Author)
	}

	sb.WriteString(" ORDER BY occurred_at DESC, recorded_at DESC")
	if filter.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
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
	res, err := r.db.ExecContext(ctx, `
		UPDATE care_events SET
			occurred_at = ?, author = ?,
			food = ?, water = ?, litter = ?, grooming = ?,
			medication = ?, supplements = ?, deworming = ?, bath = ?,
			stool_type = ?, urine_status = ?, litter_clean = ?,
			weight = ?, note = ?
		WHERE id = ?
	`,
		e.OccurredAt.UnixMilli(), e.Author,
		e.Actions.Food, e.Actions.Water, e.Actions.Litter, e.Actions.Grooming,
		e.Actions.Medication, e.Actions.Supplements, e.Actions.Deworming, e.Actions.Bath,
		string(e.StoolType), string(e.UrineStatus), e.LitterClean,
		weightString(e.Weight), e.Note,
		e.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CareRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM care_events WHERE id = ?`, id)
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
		e        care.Event
		occurred int64
		recorded int64
		stool    string
		urine    string
		weight   sql.NullString
	)
	if err := row.Scan(
		&e.ID, &e.PetID, &occurred, &recorded, &e.Author,
		&e.Actions.Food, &e.Actions.Water, &e.Actions.Litter, &e.Actions.Grooming,
		&e.Actions.Medication, &e.Actions.Supplements, &e.Actions.Deworming, &e.Actions.Bath,
		&stool, &urine, &e.LitterClean, &weight, &e.Note,
	); err != nil {
		return care.Event{}, err
	}

	e.OccurredAt = time.UnixMilli(occurred)
	e.RecordedAt = time.UnixMilli(recorded)
	e.StoolType = care.StoolType(stool)
	e.UrineStatus = care.UrineStatus(urine)
	if weight.Valid && weight.String != "" {
		d, err := decimal.NewFromString(weight.String)
		if err != nil {
			return care.Event{}, err
		}
		e.Weight = &d
	}
	return e, nil
}

func weightString(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}
