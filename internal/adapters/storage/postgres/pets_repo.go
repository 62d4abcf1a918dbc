package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/vecear/Catlog-sub000/internal/domain/pets"

	sq "github.com/Masterminds/squirrel"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

var petColumns = []string{
	"id", "owner_user_id", "name", "species", "sex",
	"birth_date", "timezone", "notes", "created_at", "updated_at",
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	query, args, err := psql.Insert("pets").
		Columns(petColumns...).
		Values(
			p.ID, p.OwnerUserID, p.Name, string(p.Species), string(p.Sex),
			p.BirthDate, p.Timezone, p.Notes, p.CreatedAt, p.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, ErrNotFound
	}

	query, args, err := psql.Select(petColumns...).
		From("pets").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return pets.Pet{}, err
	}

	p, err := scanPet(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return pets.Pet{}, ErrNotFound
	}
	return p, err
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	query, args, err := psql.Select(petColumns...).
		From("pets").
		Where(sq.Eq{"owner_user_id": ownerUserID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) AddCaregiver(ctx context.Context, c pets.Caregiver) error {
	query, args, err := psql.Insert("caregivers").
		Columns("id", "pet_id", "user_id", "name", "color", "created_at").
		Values(c.ID, c.PetID, c.UserID, c.Name, c.Color, c.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *PetsRepo) ListCaregivers(ctx context.Context, petID string) ([]pets.Caregiver, error) {
	query, args, err := psql.Select("id", "pet_id", "user_id", "name", "color", "created_at").
		From("caregivers").
		Where(sq.Eq{"pet_id": petID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Caregiver, 0)
	for rows.Next() {
		var c pets.Caregiver
		if err := rows.Scan(&c.ID, &c.PetID, &c.UserID, &c.Name, &c.Color, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PetsRepo) RemoveCaregiver(ctx context.Context, petID, caregiverID string) error {
	query, args, err := psql.Delete("caregivers").
		Where(sq.Eq{"id": caregiverID, "pet_id": petID}).
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

func scanPet(row rowScanner) (pets.Pet, error) {
	var (
		p       pets.Pet
		species string
		sex     string
		birth   sql.NullTime
	)
	if err := row.Scan(
		&p.ID, &p.OwnerUserID, &p.Name, &species, &sex,
		&birth, &p.Timezone, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	p.Species = pets.Species(species)
	p.Sex = pets.Sex(sex)
	if birth.Valid {
		t := birth.Time
		p.BirthDate = &t
	}
	return p, nil
}
