package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-adoption-welfare/internal/domain/adoptions"
)

const adoptionColumns = `a.id, a.user_id, a.pet_id, a.status, a.adoption_date, a.created_at, a.updated_at`

type AdoptionsRepo struct {
	db dbtx
}

func NewAdoptionsRepo(db dbtx) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

func (r *AdoptionsRepo) Create(ctx context.Context, a adoptions.Adoption) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO adoptions (id, user_id, pet_id, status, adoption_date, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		a.ID,
		a.UserID,
		a.PetID,
		a.Status,
		nullTime(a.AdoptionDate),
		a.CreatedAt,
		a.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return adoptions.ErrDuplicateApplication
	}
	return err
}

func (r *AdoptionsRepo) Update(ctx context.Context, a adoptions.Adoption) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE adoptions
		SET status = $2, adoption_date = $3, updated_at = $4
		WHERE id = $1
	`, a.ID, a.Status, nullTime(a.AdoptionDate), a.UpdatedAt)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return adoptions.ErrNotFound
	}
	return nil
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return adoptions.Adoption{}, adoptions.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+adoptionColumns+` FROM adoptions a WHERE a.id = $1`, id)
	a, err := scanAdoption(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return adoptions.Adoption{}, adoptions.ErrNotFound
		}
		return adoptions.Adoption{}, err
	}
	return a, nil
}

func (r *AdoptionsRepo) ListByUser(ctx context.Context, userID string) ([]adoptions.Adoption, error) {
	return r.list(ctx, `
		SELECT `+adoptionColumns+`
		FROM adoptions a
		WHERE a.user_id = $1
		ORDER BY a.created_at DESC
	`, userID)
}

func (r *AdoptionsRepo) ListByUserAndPet(ctx context.Context, userID, petID string) ([]adoptions.Adoption, error) {
	return r.list(ctx, `
		SELECT `+adoptionColumns+`
		FROM adoptions a
		WHERE a.user_id = $1 AND a.pet_id = $2
		ORDER BY a.created_at DESC
	`, userID, petID)
}

func (r *AdoptionsRepo) ListByShelter(ctx context.Context, shelterID string) ([]adoptions.Adoption, error) {
	return r.list(ctx, `
		SELECT `+adoptionColumns+`
		FROM adoptions a
		JOIN pets p ON p.id = a.pet_id
		WHERE p.shelter_id = $1
		ORDER BY a.created_at DESC
	`, shelterID)
}

func (r *AdoptionsRepo) list(ctx context.Context, query string, args ...any) ([]adoptions.Adoption, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]adoptions.Adoption, 0)
	for rows.Next() {
		a, err := scanAdoption(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAdoption(s scanner) (adoptions.Adoption, error) {
	var (
		a  adoptions.Adoption
		ad sql.NullTime
	)
	if err := s.Scan(&a.ID, &a.UserID, &a.PetID, &a.Status, &ad, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return adoptions.Adoption{}, err
	}
	a.AdoptionDate = fromNullTime(ad)
	return a, nil
}
