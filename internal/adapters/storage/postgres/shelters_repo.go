package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-adoption-welfare/internal/domain/shelters"
)

type SheltersRepo struct {
	db dbtx
}

func NewSheltersRepo(db dbtx) *SheltersRepo {
	return &SheltersRepo{db: db}
}

// Upsert no pisa verified/verified_at/created_at de un perfil existente.
func (r *SheltersRepo) Upsert(ctx context.Context, s shelters.Shelter) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO shelters (
			id, name, email,
			latitude, longitude,
			verified, verified_at,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			updated_at = EXCLUDED.updated_at
	`,
		s.ID,
		s.Name,
		s.Email,
		nullFloat(s.Latitude),
		nullFloat(s.Longitude),
		s.Verified,
		nullTime(s.VerifiedAt),
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

func (r *SheltersRepo) GetByID(ctx context.Context, id string) (shelters.Shelter, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, latitude, longitude, verified, verified_at, created_at, updated_at
		FROM shelters
		WHERE id = $1
	`, strings.TrimSpace(id))

	s, err := scanShelter(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return shelters.Shelter{}, shelters.ErrNotFound
		}
		return shelters.Shelter{}, err
	}
	return s, nil
}

func (r *SheltersRepo) Update(ctx context.Context, s shelters.Shelter) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE shelters
		SET
			name = $2,
			email = $3,
			latitude = $4,
			longitude = $5,
			verified = $6,
			verified_at = $7,
			updated_at = $8
		WHERE id = $1
	`,
		s.ID,
		s.Name,
		s.Email,
		nullFloat(s.Latitude),
		nullFloat(s.Longitude),
		s.Verified,
		nullTime(s.VerifiedAt),
		s.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return shelters.ErrNotFound
	}
	return nil
}

func (r *SheltersRepo) ListVerified(ctx context.Context) ([]shelters.Shelter, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, latitude, longitude, verified, verified_at, created_at, updated_at
		FROM shelters
		WHERE verified
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]shelters.Shelter, 0)
	for rows.Next() {
		s, err := scanShelter(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanShelter(sc scanner) (shelters.Shelter, error) {
	var (
		s        shelters.Shelter
		lat, lng sql.NullFloat64
		vAt      sql.NullTime
	)
	if err := sc.Scan(&s.ID, &s.Name, &s.Email, &lat, &lng, &s.Verified, &vAt, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return shelters.Shelter{}, err
	}
	s.Latitude = fromNullFloat(lat)
	s.Longitude = fromNullFloat(lng)
	s.VerifiedAt = fromNullTime(vAt)
	return s, nil
}
