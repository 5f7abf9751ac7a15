package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"birds-api/internal/domain/birds"
)

type BirdsRepo struct {
	db *sql.DB
}

func NewBirdsRepo(db *sql.DB) *BirdsRepo {
	return &BirdsRepo{db: db}
}

func (r *BirdsRepo) Create(ctx context.Context, b birds.Bird) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO birds (
			id, name, species, likes,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		b.ID,
		b.Name,
		b.Species,
		b.Likes,
		b.CreatedAt,
		b.UpdatedAt,
	)
	return err
}

func (r *BirdsRepo) Update(ctx context.Context, b birds.Bird) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE birds
		SET
			name = $2,
			species = $3,
			likes = $4,
			updated_at = $5
		WHERE id = $1
	`,
		b.ID,
		b.Name,
		b.Species,
		b.Likes,
		b.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return birds.ErrNotFound
	}
	return nil
}

func (r *BirdsRepo) GetByID(ctx context.Context, id string) (birds.Bird, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return birds.Bird{}, birds.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, name, species, likes,
			created_at, updated_at
		FROM birds
		WHERE id = $1
	`, id)

	return scanBird(row)
}

func (r *BirdsRepo) List(ctx context.Context) ([]birds.Bird, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, species, likes,
			created_at, updated_at
		FROM birds
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]birds.Bird, 0)
	for rows.Next() {
		var b birds.Bird
		if err := rows.Scan(
			&b.ID,
			&b.Name,
			&b.Species,
			&b.Likes,
			&b.CreatedAt,
			&b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}

	return out, rows.Err()
}

// IncrementLikes incrementa en un solo statement para que el contador no
// pierda likes bajo requests concurrentes (el read-modify-write queda
// dentro del UPDATE).
func (r *BirdsRepo) IncrementLikes(ctx context.Context, id string, now time.Time) (birds.Bird, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE birds
		SET
			likes = likes + 1,
			updated_at = $2
		WHERE id = $1
		RETURNING
			id, name, species, likes,
			created_at, updated_at
	`, id, now)

	return scanBird(row)
}

func scanBird(row *sql.Row) (birds.Bird, error) {
	var b birds.Bird
	if err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Species,
		&b.Likes,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return birds.Bird{}, birds.ErrNotFound
		}
		return birds.Bird{}, err
	}
	return b, nil
}
