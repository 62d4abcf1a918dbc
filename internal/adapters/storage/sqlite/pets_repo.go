package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/vecear/Catlog-sub000/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petCols = `
	id, owner_user_id, name, species, sex,
	birth_date, timezone, notes, created_at, updated_at`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petCols+`) VALUES (?,?,?,?,?,?,?,?,?,?)
	`,
		p.ID, p.OwnerUserID, p.Name, string(p.Species), string(p.Sex),
		birthString(p.BirthDate), p.Timezone, p.Notes,
		p.CreatedAt.UnixMilli(), p.UpdatedAt.UnixMilli(),
	)
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+petCols+` FROM pets WHERE id = ?
	`, strings.TrimSpace(id))

	p, err := scanPet(row)
	if err == sql.ErrNoRows {
		return pets.Pet{}, ErrNotFound
	}
	return p, err
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petCols+` FROM pets WHERE owner_user_id = ? ORDER BY created_at ASC
	`, ownerUserID)
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
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO caregivers (id, pet_id, user_id, name, color, created_at)
		VALUES (?,?,?,?,?,?)
	`, c.ID, c.PetID, c.UserID, c.Name, c.Color, c.CreatedAt.UnixMilli())
	return err
}

func (r *PetsRepo) ListCaregivers(ctx context.Context, petID string) ([]pets.Caregiver, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, user_id, name, color, created_at
		FROM caregivers WHERE pet_id = ? ORDER BY created_at ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Caregiver, 0)
	for rows.Next() {
		var (
			c       pets.Caregiver
			created int64
		)
		if err := rows.Scan(&c.ID, &c.PetID, &c.UserID, &c.Name, &c.Color, &created); err != nil {
			return nil, err
		}
		c.CreatedAt = time.UnixMilli(created)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PetsRepo) RemoveCaregiver(ctx context.Context, petID, caregiverID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM caregivers WHERE id = ? AND pet_id = ?
	`, caregiverID, petID)
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
		birth   sql.NullString
		created int64
		updated int64
	)
	if err := row.Scan(
		&p.ID, &p.OwnerUserID, &p.Name, &species, &sex,
		&birth, &p.Timezone, &p.Notes, &created, &updated,
	); err != nil {
		return pets.Pet{}, err
	}

	p.Species = pets.Species(species)
	p.Sex = pets.Sex(sex)
	p.CreatedAt = time.UnixMilli(created)
	p.UpdatedAt = time.UnixMilli(updated)
	if birth.Valid && birth.String != "" {
		t, err := time.Parse("2006-01-02", birth.String)
		if err != nil {
			return pets.Pet{}, err
		}
		p.BirthDate = &t
	}
	return p, nil
}

func birthString(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format("2006-01-02")
}
